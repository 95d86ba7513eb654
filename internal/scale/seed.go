// SPDX-License-Identifier: MIT
package scale

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/littlebrand/littlebrand/internal/oklch"
)

// Seed is the single colour a scale is derived from. It is one of Hex, RGB
// or OKLCH and resolves once into a canonical OKLCH value.
type Seed interface {
	Resolve() (oklch.Color, error)
}

// Hex is a "#RRGGBB" seed.
type Hex string

// RGB is an 8-bit sRGB seed.
type RGB struct {
	R, G, B uint8
}

// OKLCH is a seed given directly in OKLCH.
type OKLCH struct {
	L, C, H float64
}

// Resolve implements Seed.
func (h Hex) Resolve() (oklch.Color, error) {
	return oklch.HexToOKLCH(string(h))
}

// Resolve implements Seed.
func (c RGB) Resolve() (oklch.Color, error) {
	return oklch.RGBToOKLCH(oklch.RGB{R: c.R, G: c.G, B: c.B}), nil
}

// Resolve implements Seed. Hue is normalised and chroma capped at
// oklch.MaxChroma so the resolved value survives scale post-processing.
func (c OKLCH) Resolve() (oklch.Color, error) {
	input := fmt.Sprintf("oklch(%v %v %v)", c.L, c.C, c.H)
	for _, v := range []float64{c.L, c.C, c.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return oklch.Color{}, &oklch.InvalidColorError{Input: input, Reason: "non-finite component"}
		}
	}
	if c.L < 0 || c.L > 1 {
		return oklch.Color{}, &oklch.InvalidColorError{Input: input, Reason: "lightness outside [0,1]"}
	}
	if c.C < 0 {
		return oklch.Color{}, &oklch.InvalidColorError{Input: input, Reason: "negative chroma"}
	}

	return oklch.Color{
		L: c.L,
		C: math.Min(c.C, oklch.MaxChroma),
		H: oklch.NormalizeHue(c.H),
	}, nil
}

var rgbFuncPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*\)$`)

// ParseSeed reads a seed written as "#rrggbb", "rgb(r, g, b)" or
// "oklch(L C H)".
func ParseSeed(s string) (Seed, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "oklch("):
		c, _, err := oklch.ParseCSS(lower)
		if err != nil {
			return nil, err
		}
		return OKLCH{L: c.L, C: c.C, H: c.H}, nil

	case strings.HasPrefix(lower, "rgb("):
		m := rgbFuncPattern.FindStringSubmatch(lower)
		if m == nil {
			return nil, &oklch.InvalidColorError{Input: s, Reason: "expected rgb(r, g, b)"}
		}
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return nil, &oklch.InvalidColorError{Input: s, Reason: "channel outside 0-255"}
			}
			ch[i] = uint8(v)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil

	default:
		if _, err := oklch.ParseHex(s); err != nil {
			return nil, err
		}
		return Hex(s), nil
	}
}
