// SPDX-License-Identifier: MIT

// Package scale derives 12-step light, dark and alpha colour scales from a
// single seed colour using OKLCH.
//
// Step 9 is always the seed itself. Steps 1-8 lead up to it (backgrounds,
// borders) and steps 10-12 run past it (hover fills and text).
package scale

import (
	"math"

	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/rs/zerolog"
)

// Steps is the number of entries in every scale.
const Steps = 12

// BaseStep is the step holding the unmodified seed.
const BaseStep = 9

// Scale is a generated 12-step colour scale.
type Scale struct {
	Mode  Mode
	Steps [Steps]oklch.Color
}

// Step returns step n (1-12).
func (s Scale) Step(n int) oklch.Color {
	return s.Steps[n-1]
}

// CSS returns step n (1-12) formatted as an oklch() value.
func (s Scale) CSS(n int) string {
	return oklch.Format(s.Step(n))
}

// Map returns every step keyed by its 1-based index.
func (s Scale) Map() map[int]string {
	out := make(map[int]string, Steps)
	for i := 1; i <= Steps; i++ {
		out[i] = s.CSS(i)
	}
	return out
}

type hueBucket int

const (
	bucketDefault hueBucket = iota
	bucketOrange
	bucketYellow
	bucketGreenTeal
	bucketBlue
)

func bucketFor(h float64) hueBucket {
	switch {
	case h >= 30 && h < 80:
		return bucketOrange
	case h >= 80 && h < 120:
		return bucketYellow
	case h >= 120 && h < 200:
		return bucketGreenTeal
	case h >= 200 && h < 280:
		return bucketBlue
	default:
		return bucketDefault
	}
}

var (
	lightLadder = [8]float64{0.993, 0.982, 0.961, 0.932, 0.902, 0.868, 0.820, 0.754}

	lightDarkest = map[hueBucket]float64{
		bucketOrange:    0.33,
		bucketYellow:    0.30,
		bucketGreenTeal: 0.32,
		bucketBlue:      0.31,
		bucketDefault:   0.33,
	}

	darkAnchor = map[hueBucket]float64{
		bucketOrange:    0.187,
		bucketYellow:    0.183,
		bucketGreenTeal: 0.181,
		bucketBlue:      0.178,
		bucketDefault:   0.180,
	}

	// added to the step 1 anchor for steps 2-8
	darkOffsets = [7]float64{0.025, 0.072, 0.113, 0.153, 0.195, 0.255, 0.338}

	darkLightest = map[hueBucket]float64{
		bucketOrange:    0.935,
		bucketYellow:    0.96,
		bucketGreenTeal: 0.925,
		bucketBlue:      0.915,
		bucketDefault:   0.93,
	}

	lightChroma = [Steps]float64{0.06, 0.14, 0.26, 0.40, 0.52, 0.62, 0.72, 0.86, 1, 1.02, 0.95, 0.55}
	darkChroma  = [Steps]float64{0.10, 0.14, 0.30, 0.45, 0.55, 0.62, 0.70, 0.82, 1, 0.98, 0.85, 0.40}
)

type options struct {
	curve Curve
}

// Option tunes scale generation.
type Option func(*options)

// WithCurve selects the chroma curve. Step 9 is never affected.
func WithCurve(c Curve) Option {
	return func(o *options) {
		o.curve = c
	}
}

// Generate builds the 12-step scale for seed in the given mode.
func Generate(seed Seed, mode Mode, opts ...Option) (Scale, error) {
	if seed == nil {
		return Scale{}, &oklch.InvalidColorError{Reason: "missing seed"}
	}
	base, err := seed.Resolve()
	if err != nil {
		return Scale{}, err
	}

	o := options{curve: Natural}
	for _, opt := range opts {
		opt(&o)
	}

	bucket := bucketFor(base.H)
	var lightness [Steps]float64
	var chroma [Steps]float64
	var drift [Steps]float64

	if mode == Dark {
		lightness = darkLightness(base.L, bucket)
		chroma = darkChroma
		drift[0], drift[1] = -2, -2
		drift[10], drift[11] = 3, 3
	} else {
		lightness = lightLightness(base.L, bucket)
		chroma = lightChroma
		drift[0], drift[1] = 2, 2
		drift[10], drift[11] = -3, -3
	}

	factor := o.curve.chromaFactor()
	s := Scale{Mode: mode}
	for i := 0; i < Steps; i++ {
		if i == BaseStep-1 {
			s.Steps[i] = base
			continue
		}
		s.Steps[i] = oklch.Color{
			L: lightness[i],
			C: base.C * chroma[i] * factor,
			H: base.H + drift[i],
		}.Clamped()
	}

	return s, nil
}

func lightLightness(l9 float64, bucket hueBucket) [Steps]float64 {
	var out [Steps]float64
	copy(out[:8], lightLadder[:])
	out[8] = l9
	out[9] = l9 * 0.96
	out[10] = l9 * 0.84
	out[11] = math.Min(lightDarkest[bucket], out[10])
	return out
}

func darkLightness(l9 float64, bucket hueBucket) [Steps]float64 {
	var out [Steps]float64
	out[0] = darkAnchor[bucket]
	for i, offset := range darkOffsets {
		out[i+1] = out[0] + offset
	}
	out[8] = l9
	out[9] = math.Max(l9, math.Min(l9*1.06, 0.92))
	out[10] = math.Max(out[9], math.Min(l9*1.15, 0.95))
	out[11] = math.Max(out[10], darkLightest[bucket])
	return out
}

// Fallback is the neutral grey scale substituted for an unusable seed:
// zero chroma, lightness 0.99 down to 0.11 in light mode and the same
// ladder reversed in dark mode.
func Fallback(mode Mode) Scale {
	s := Scale{Mode: mode}
	for i := 0; i < Steps; i++ {
		l := 0.99 - float64(i)*0.08
		if mode == Dark {
			l = 0.99 - float64(Steps-1-i)*0.08
		}
		s.Steps[i] = oklch.Color{L: math.Round(l*100) / 100}
	}
	return s
}

// GenerateOrFallback is Generate for callers that must not fail: an invalid
// seed is logged and replaced by Fallback(mode).
func GenerateOrFallback(seed Seed, mode Mode, logger zerolog.Logger, opts ...Option) Scale {
	s, err := Generate(seed, mode, opts...)
	if err != nil {
		logger.Warn().Err(err).Str("mode", mode.String()).Msg("using neutral fallback scale")
		return Fallback(mode)
	}
	return s
}
