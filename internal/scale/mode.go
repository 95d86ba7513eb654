// SPDX-License-Identifier: MIT
package scale

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Mode selects the light or dark variant of a scale.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// InvalidModeError reports an unrecognised mode name.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q: expected light or dark", e.Mode)
}

// ParseMode accepts "light" or "dark", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, &InvalidModeError{Mode: s}
	}
}

// ModeOrLight parses s and falls back to Light, logging a warning, when it
// is not a known mode.
func ModeOrLight(s string, logger zerolog.Logger) Mode {
	mode, err := ParseMode(s)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to light mode")
	}
	return mode
}

// ModeFromDark maps a dark-mode flag to a Mode.
func ModeFromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// Curve adjusts how saturated the non-base steps are.
type Curve string

const (
	Natural Curve = "natural"
	Vivid   Curve = "vivid"
	Muted   Curve = "muted"
)

// ParseCurve accepts natural, vivid or muted. The empty string is natural.
func ParseCurve(s string) (Curve, error) {
	switch c := Curve(strings.ToLower(strings.TrimSpace(s))); c {
	case "", Natural:
		return Natural, nil
	case Vivid, Muted:
		return c, nil
	default:
		return Natural, fmt.Errorf("invalid curve %q: expected natural, vivid or muted", s)
	}
}

func (c Curve) chromaFactor() float64 {
	switch c {
	case Vivid:
		return 1.15
	case Muted:
		return 0.8
	default:
		return 1
	}
}
