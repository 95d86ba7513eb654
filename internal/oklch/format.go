// SPDX-License-Identifier: MIT
package oklch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var cssPattern = regexp.MustCompile(`^oklch\(\s*([0-9]*\.?[0-9]+)(%?)\s+([0-9]*\.?[0-9]+)\s+([0-9]*\.?[0-9]+)(?:\s*/\s*([0-9]*\.?[0-9]+)(%?))?\s*\)$`)

// Format renders c as a CSS oklch() value: lightness with up to four
// decimals, chroma with three and hue with one.
func Format(c Color) string {
	return fmt.Sprintf("oklch(%s %.3f %.1f)", formatLightness(c.L), c.C, formatHue(c.H))
}

// FormatAlpha renders c with a trailing "/ alpha". An alpha of 1 or more
// is written without the alpha component.
func FormatAlpha(c Color, alpha float64) string {
	if alpha >= 1 {
		return Format(c)
	}
	a := strconv.FormatFloat(math.Round(alpha*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("oklch(%s %.3f %.1f / %s)", formatLightness(c.L), c.C, formatHue(c.H), a)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return Format(c)
}

// formatHue rounds to the printed precision before wrapping so 359.96
// prints as 0.0, not 360.0.
func formatHue(h float64) float64 {
	h = NormalizeHue(math.Round(NormalizeHue(h)*10) / 10)
	if h == 0 {
		h = 0 // drop the sign of -0
	}
	return h
}

func formatLightness(l float64) string {
	return strconv.FormatFloat(math.Round(l*10000)/10000, 'f', -1, 64)
}

// ParseCSS reads a value produced by Format or FormatAlpha. Lightness may
// also be written as a percentage. The returned alpha is 1 when absent.
func ParseCSS(value string) (Color, float64, error) {
	m := cssPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return Color{}, 0, &InvalidColorError{Input: value, Reason: "expected oklch(L C H)"}
	}

	l, _ := strconv.ParseFloat(m[1], 64)
	if m[2] == "%" {
		l /= 100
	}
	c, _ := strconv.ParseFloat(m[3], 64)
	h, _ := strconv.ParseFloat(m[4], 64)

	alpha := 1.0
	if m[5] != "" {
		alpha, _ = strconv.ParseFloat(m[5], 64)
		if m[6] == "%" {
			alpha /= 100
		}
	}

	return Color{L: l, C: c, H: NormalizeHue(h)}, alpha, nil
}

// ParseLightness extracts only the lightness from an oklch() value.
func ParseLightness(value string) (float64, error) {
	c, _, err := ParseCSS(value)
	if err != nil {
		return 0, err
	}
	return c.L, nil
}
