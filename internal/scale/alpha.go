// SPDX-License-Identifier: MIT
package scale

import (
	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/rs/zerolog"
)

var (
	lightAlphas = [Steps]float64{0.012, 0.027, 0.047, 0.071, 0.090, 0.114, 0.141, 0.220, 0.439, 0.478, 0.565, 0.910}
	darkAlphas  = [Steps]float64{0.017, 0.034, 0.056, 0.085, 0.110, 0.135, 0.165, 0.250, 0.480, 0.520, 0.620, 0.930}
)

// AlphaStep is one translucent entry of an alpha scale.
type AlphaStep struct {
	Color oklch.Color
	Alpha float64
}

// CSS formats the step as oklch(L C H / alpha).
func (a AlphaStep) CSS() string {
	return oklch.FormatAlpha(a.Color, a.Alpha)
}

// AlphaScale holds the translucent steps of a seed. It is empty when the
// seed could not be resolved.
type AlphaScale []AlphaStep

// Map returns every step keyed by its 1-based index.
func (a AlphaScale) Map() map[int]string {
	out := make(map[int]string, len(a))
	for i, step := range a {
		out[i+1] = step.CSS()
	}
	return out
}

// GenerateAlpha builds the 12-step alpha scale for seed. Light overlays are
// slightly darker than the seed and dark overlays slightly lighter; chroma
// is eased off at both ends of the opacity range.
func GenerateAlpha(seed Seed, mode Mode) (AlphaScale, error) {
	if seed == nil {
		return nil, &oklch.InvalidColorError{Reason: "missing seed"}
	}
	base, err := seed.Resolve()
	if err != nil {
		return nil, err
	}

	alphas := lightAlphas
	shift := -0.05
	if mode == Dark {
		alphas = darkAlphas
		shift = 0.05
	}

	out := make(AlphaScale, Steps)
	for i := 0; i < Steps; i++ {
		c := base.C
		if i < 3 || i >= 10 {
			c *= 0.85
		}
		out[i] = AlphaStep{
			Color: oklch.Color{L: base.L + shift, C: c, H: base.H}.Clamped(),
			Alpha: alphas[i],
		}
	}

	return out, nil
}

// AlphaOrEmpty is GenerateAlpha that logs and returns an empty scale on error.
func AlphaOrEmpty(seed Seed, mode Mode, logger zerolog.Logger) AlphaScale {
	a, err := GenerateAlpha(seed, mode)
	if err != nil {
		logger.Debug().Err(err).Str("mode", mode.String()).Msg("skipping alpha scale")
		return AlphaScale{}
	}
	return a
}
