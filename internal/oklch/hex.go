// SPDX-License-Identifier: MIT
package oklch

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// InvalidColorError reports a colour value that could not be interpreted.
type InvalidColorError struct {
	Input  string
	Reason string
}

func (e *InvalidColorError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid color %q", e.Input)
	}
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (case-insensitive).
func ParseHex(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, &InvalidColorError{Input: hex, Reason: "expected #RRGGBB"}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, &InvalidColorError{Input: hex, Reason: err.Error()}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex formats an RGB colour as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexToOKLCH parses a hex colour and converts it to OKLCH.
func HexToOKLCH(hex string) (Color, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Color{}, err
	}
	return RGBToOKLCH(rgb), nil
}

// ToHex converts an OKLCH colour to the nearest in-gamut "#rrggbb".
func ToHex(c Color) string {
	return ToRGB(c).Hex()
}

// Hex is shorthand for ToHex(c).
func (c Color) Hex() string {
	return ToHex(c)
}
