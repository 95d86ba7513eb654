// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// BackgroundRole names the entry that selects the page background. Its value
// is either a hex colour or the name of another role.
const BackgroundRole = "background"

// Roles lists the colour roles in the order they are applied.
var Roles = []string{"primary", "secondary", "tertiary", "success", "warning", "error", "info", "neutral"}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Colors maps a role name to its seed hex colour
type Colors map[string]string

// DefaultColors returns the seed used for every role the caller leaves unset
func DefaultColors() Colors {
	return Colors{
		"primary":      "#ff8800", // Orange
		"secondary":    "#00bfa5", // Teal
		"tertiary":     "#3b82f6", // Blue
		"success":      "#22c55e", // Green
		"warning":      "#f59e0b", // Yellow
		"error":        "#ef4444", // Red
		"info":         "#3b82f6", // Blue
		"neutral":      "#6b7280", // Gray
		BackgroundRole: "neutral",
	}
}

// IsHex reports whether value is a "#RRGGBB" colour
func IsHex(value string) bool {
	return hexColor.MatchString(value)
}

// WithDefaults returns the defaults overlaid with c. Keys are lower-cased and
// empty values are ignored.
func (c Colors) WithDefaults() Colors {
	out := DefaultColors()
	for role, value := range c {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out[strings.ToLower(role)] = value
	}
	return out
}

// RoleNames returns the roles to generate: the known roles first, then any
// custom roles in alphabetical order. The background entry is excluded.
func (c Colors) RoleNames() []string {
	known := make(map[string]bool, len(Roles))
	names := make([]string, 0, len(c))
	for _, role := range Roles {
		known[role] = true
		if _, ok := c[role]; ok {
			names = append(names, role)
		}
	}

	var custom []string
	for role := range c {
		if !known[role] && role != BackgroundRole {
			custom = append(custom, role)
		}
	}
	sort.Strings(custom)

	return append(names, custom...)
}

// BackgroundSeed resolves the background entry to a hex colour. A role
// reference that does not exist falls back to the neutral role.
func (c Colors) BackgroundSeed() string {
	bg := c[BackgroundRole]
	if bg == "" {
		bg = "neutral"
	}
	if strings.HasPrefix(bg, "#") {
		return bg
	}
	if hex, ok := c[bg]; ok {
		return hex
	}
	return c["neutral"]
}

// Validate returns an error listing every role whose value is not a hex
// colour. The background entry may also name a role.
func (c Colors) Validate() error {
	var bad []string
	for role, value := range c {
		if role == BackgroundRole && !strings.HasPrefix(value, "#") {
			continue
		}
		if !IsHex(value) {
			bad = append(bad, fmt.Sprintf("%s=%q", role, value))
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("invalid hex colors: %s", strings.Join(bad, ", "))
	}
	return nil
}
