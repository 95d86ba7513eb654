// SPDX-License-Identifier: MIT

// Package themes turns a set of role seeds into the complete --lb-* token set
// for a mode, and keeps a sink up to date as the mode changes.
package themes

import (
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/tokens"
	"github.com/rs/zerolog"
)

// Surface and overlay tokens derived from the background role
const (
	BackgroundPage    = tokens.Prefix + "background-page"
	BackgroundSurface = tokens.Prefix + "background-surface"
	BackgroundOverlay = tokens.Prefix + "background-overlay"
	SurfaceBase       = tokens.Prefix + "surface-base"
	SurfaceSubtle     = tokens.Prefix + "surface-subtle"
	SurfaceDisabled   = tokens.Prefix + "surface-disabled"
	SurfaceOverlay    = tokens.Prefix + "surface-overlay"
	DividerColor      = tokens.Prefix + "divider-color"
	FocusRingColor    = tokens.Prefix + "focus-ring-color"
)

const (
	lightOverlay = "oklch(0 0 0 / 0.5)"
	darkOverlay  = "oklch(0 0 0 / 0.7)"
)

// Surfaces written when the background scale cannot be generated
var (
	lightSurfaceDefaults = [3]string{"oklch(0.98 0.01 0)", "oklch(0.96 0.01 0)", "oklch(0.94 0.01 0)"}
	darkSurfaceDefaults  = [3]string{"oklch(0.18 0.01 0)", "oklch(0.21 0.01 0)", "oklch(0.24 0.01 0)"}
)

// Build generates the token set for every role in colors in the given mode.
// Unset roles take their default seed. A role whose seed is unusable is
// logged and gets the neutral fallback scale; the others are unaffected.
func Build(colors Colors, curve scale.Curve, mode scale.Mode, logger zerolog.Logger) tokens.Map {
	colors = colors.WithDefaults()
	out := tokens.Map{}
	scales := map[string]scale.Scale{}

	for _, role := range colors.RoleNames() {
		scales[role] = roleTokens(out, role, colors[role], curve, mode, logger)
	}

	backgroundTokens(out, colors, curve, mode, logger)

	if primary, ok := scales["primary"]; ok {
		out[FocusRingColor] = primary.CSS(8)
	}

	return out
}

// BuildBoth returns the light and dark token sets for colors.
func BuildBoth(colors Colors, curve scale.Curve, logger zerolog.Logger) (light, dark tokens.Map) {
	return Build(colors, curve, scale.Light, logger), Build(colors, curve, scale.Dark, logger)
}

func roleTokens(out tokens.Map, role, hex string, curve scale.Curve, mode scale.Mode, logger zerolog.Logger) scale.Scale {
	roleLogger := logger.With().Str("role", role).Logger()

	var s scale.Scale
	if IsHex(hex) {
		seed := scale.Hex(hex)
		s = scale.GenerateOrFallback(seed, mode, roleLogger, scale.WithCurve(curve))
		out.Merge(tokens.Alpha(role, scale.AlphaOrEmpty(seed, mode, roleLogger)))
	} else {
		roleLogger.Warn().Str("seed", hex).Str("mode", mode.String()).Msg("using neutral fallback scale")
		s = scale.Fallback(mode)
	}

	out.Merge(tokens.Semantic(role, s))
	out.Merge(tokens.Raw(role, s))

	return s
}

func backgroundTokens(out tokens.Map, colors Colors, curve scale.Curve, mode scale.Mode, logger zerolog.Logger) {
	surfaces := lightSurfaceDefaults
	overlay := lightOverlay
	if mode == scale.Dark {
		surfaces = darkSurfaceDefaults
		overlay = darkOverlay
	}

	bg, err := scale.Generate(scale.Hex(colors.BackgroundSeed()), mode, scale.WithCurve(curve))
	if err != nil {
		logger.Warn().Err(err).Str("background", colors[BackgroundRole]).Msg("using default surface colors")
		out[SurfaceBase] = surfaces[0]
		out[SurfaceSubtle] = surfaces[1]
		out[SurfaceDisabled] = surfaces[2]
		out[BackgroundPage] = surfaces[0]
		out[BackgroundSurface] = surfaces[1]
	} else {
		out[SurfaceBase] = bg.CSS(1)
		out[SurfaceSubtle] = bg.CSS(2)
		out[SurfaceDisabled] = bg.CSS(3)
		out[BackgroundPage] = bg.CSS(1)
		out[BackgroundSurface] = bg.CSS(2)
		out[DividerColor] = bg.CSS(6)
	}

	out[SurfaceOverlay] = overlay
	out[BackgroundOverlay] = overlay
}
