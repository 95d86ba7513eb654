// SPDX-License-Identifier: MIT
package themes

import (
	"strings"

	"github.com/littlebrand/littlebrand/internal/tokens"
)

// GenerateCSS renders m as a single rule for selector, one property per line
// in sorted order.
func GenerateCSS(selector string, m tokens.Map) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, k := range m.Keys() {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m[k])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// GenerateThemeCSS renders the light set on :root and the dark set on .dark
func GenerateThemeCSS(light, dark tokens.Map) string {
	return GenerateCSS(":root", light) + "\n" + GenerateCSS(".dark", dark)
}

// baseTokens are the mode-independent design tokens.
var baseTokens = tokens.Map{
	// Typography
	"--lb-font-heading":           `"Inter", system-ui, -apple-system, sans-serif`,
	"--lb-font-body":              `"Inter", system-ui, -apple-system, sans-serif`,
	"--lb-font-mono":              `"JetBrains Mono", ui-monospace, monospace`,
	"--lb-font-weight-heading":    "600",
	"--lb-font-weight-body":       "400",
	"--lb-font-weight-label":      "500",
	"--lb-font-weight-normal":     "400",
	"--lb-font-weight-medium":     "500",
	"--lb-font-weight-semibold":   "600",
	"--lb-font-weight-bold":       "700",
	"--lb-line-height-tight":      "1.1",
	"--lb-line-height-compact":    "1.25",
	"--lb-line-height-normal":     "1.5",
	"--lb-line-height-relaxed":    "1.75",
	"--lb-font-size-body-small":   "0.875rem",
	"--lb-font-size-body-base":    "1rem",
	"--lb-font-size-body-large":   "1.125rem",
	"--lb-font-size-label-xsmall": "0.625rem",
	"--lb-font-size-label-small":  "0.75rem",
	"--lb-font-size-label-base":   "0.875rem",
	"--lb-font-size-label-large":  "1rem",
	"--lb-display-1":              "clamp(2.5rem, 5vw, 3.5rem)",
	"--lb-display-2":              "clamp(2rem, 4vw, 2.75rem)",
	"--lb-letter-spacing-tighter": "-0.025em",
	"--lb-letter-spacing-tight":   "-0.01em",
	"--lb-letter-spacing-normal":  "0",
	"--lb-letter-spacing-wide":    "0.025em",

	// Spacing
	"--lb-space-2xs":  "2px",
	"--lb-space-xs":   "4px",
	"--lb-space-sm":   "8px",
	"--lb-space-md":   "12px",
	"--lb-space-lg":   "16px",
	"--lb-space-xl":   "20px",
	"--lb-space-2xl":  "24px",
	"--lb-space-3xl":  "32px",
	"--lb-space-4xl":  "40px",
	"--lb-space-5xl":  "48px",
	"--lb-space-6xl":  "56px",
	"--lb-space-7xl":  "64px",
	"--lb-space-8xl":  "72px",
	"--lb-space-9xl":  "96px",
	"--lb-space-10xl": "120px",

	// Radius
	"--lb-radius-xs":   "4px",
	"--lb-radius-sm":   "8px",
	"--lb-radius-md":   "10px",
	"--lb-radius-lg":   "12px",
	"--lb-radius-xl":   "16px",
	"--lb-radius-2xl":  "24px",
	"--lb-radius-3xl":  "32px",
	"--lb-radius-4xl":  "40px",
	"--lb-radius-5xl":  "48px",
	"--lb-radius-6xl":  "56px",
	"--lb-radius-7xl":  "64px",
	"--lb-radius-8xl":  "72px",
	"--lb-radius-9xl":  "80px",
	"--lb-radius-full": "9999px",

	// Sizing
	"--lb-icon-size-sm":        "18px",
	"--lb-icon-size-md":        "20px",
	"--lb-icon-size-lg":        "24px",
	"--lb-border-sm":           "1px",
	"--lb-border-md":           "2px",
	"--lb-input-height-medium": "40px",
	"--lb-input-height-large":  "44px",
}

// BaseTokens returns a copy of the mode-independent design tokens.
func BaseTokens() tokens.Map {
	return baseTokens.Clone()
}

// BaseCSS renders the mode-independent design tokens on :root
func BaseCSS() string {
	return GenerateCSS(":root", baseTokens)
}
