// SPDX-License-Identifier: MIT

// Package tokens maps generated colour scales onto --lb-* CSS custom
// property names.
package tokens

import (
	"fmt"
	"sort"

	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/littlebrand/littlebrand/internal/scale"
)

// Prefix starts every custom property this package emits.
const Prefix = "--lb-"

// Text colours written to the text-on-<role> tokens.
const (
	TextOnLight = "var(--lb-text-light-normal)"
	TextOnDark  = "var(--lb-text-dark-normal)"
)

// Lightness above which a fill needs dark foreground text. The warning role
// switches earlier because yellows read poorly with light text.
const (
	DarkTextThreshold        = 0.75
	WarningDarkTextThreshold = 0.65
)

// Map is a flat set of CSS custom properties.
type Map map[string]string

// Keys returns the property names in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies every entry of other into m, overwriting duplicates.
func (m Map) Merge(other Map) Map {
	for k, v := range other {
		m[k] = v
	}
	return m
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type wiring struct {
	category string
	variant  string
	step     int
}

var semanticWiring = []wiring{
	{"border", "line", 6},
	{"border", "normal", 7},
	{"border", "active", 8},
	{"border", "focus", 7},
	{"border", "disabled", 5},
	{"border", "subtle", 4},

	{"fill", "normal", 9},
	{"fill", "hover", 10},
	{"fill", "active", 8},
	{"fill", "focus", 8},
	{"fill", "disabled", 4},

	{"text", "normal", 9},
	{"text", "contrast-low", 11},
	{"text", "contrast-high", 12},
	{"text", "disabled", 7},

	{"surface", "normal", 2},
	{"surface", "hover", 3},
	{"surface", "active", 4},
	{"surface", "subtle", 1},
	{"surface", "raised", 1},
	{"surface", "disabled", 3},
}

// Name builds "--lb-<category>-<role>-<variant>".
func Name(category, role, variant string) string {
	return fmt.Sprintf("%s%s-%s-%s", Prefix, category, role, variant)
}

// TextOnName builds "--lb-text-on-<role>" with an optional state suffix.
func TextOnName(role, state string) string {
	if state == "" {
		return fmt.Sprintf("%stext-on-%s", Prefix, role)
	}
	return fmt.Sprintf("%stext-on-%s-%s", Prefix, role, state)
}

// Semantic wires the steps of s to the border, fill, text, text-on and
// surface tokens of role.
func Semantic(role string, s scale.Scale) Map {
	m := make(Map, len(semanticWiring)+3)
	for _, w := range semanticWiring {
		m[Name(w.category, role, w.variant)] = s.CSS(w.step)
	}

	text := TextOn(role, s.CSS(scale.BaseStep))
	m[TextOnName(role, "")] = text
	m[TextOnName(role, "hover")] = text
	m[TextOnName(role, "active")] = text

	return m
}

// SemanticKeys lists the exact key set Semantic produces for role.
func SemanticKeys(role string) []string {
	keys := make([]string, 0, len(semanticWiring)+3)
	for _, w := range semanticWiring {
		keys = append(keys, Name(w.category, role, w.variant))
	}
	keys = append(keys, TextOnName(role, ""), TextOnName(role, "hover"), TextOnName(role, "active"))
	sort.Strings(keys)
	return keys
}

// TextOn picks the foreground for text drawn on a fill whose step 9 value is
// base. Only the parsed lightness and the role name are consulted; an
// unparseable value is treated as mid lightness.
func TextOn(role, base string) string {
	l, err := oklch.ParseLightness(base)
	if err != nil {
		l = 0.5
	}

	threshold := DarkTextThreshold
	if role == "warning" {
		threshold = WarningDarkTextThreshold
	}
	if l > threshold {
		return TextOnDark
	}
	return TextOnLight
}

// Raw exposes each step as "--lb-<role>-<step>".
func Raw(role string, s scale.Scale) Map {
	m := make(Map, scale.Steps)
	for step, v := range s.Map() {
		m[fmt.Sprintf("%s%s-%d", Prefix, role, step)] = v
	}
	return m
}

// Alpha exposes each alpha step as "--lb-<role>-alpha-<step>". An empty
// alpha scale yields an empty map.
func Alpha(role string, a scale.AlphaScale) Map {
	m := make(Map, len(a))
	for step, v := range a.Map() {
		m[fmt.Sprintf("%s%s-alpha-%d", Prefix, role, step)] = v
	}
	return m
}
