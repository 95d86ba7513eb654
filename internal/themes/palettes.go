// SPDX-License-Identifier: MIT
package themes

// Palette is a named set of role seeds
type Palette struct {
	Name   string // "slate", "indigo", etc.
	Colors Colors // role -> hex color #RRGGBB
}

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"littlebrand": {
			Name:   "littlebrand",
			Colors: DefaultColors(),
		},
		"radix": {
			Name: "radix",
			Colors: Colors{
				"primary":   "#f76b15", // Orange 9
				"secondary": "#30a46c", // Green 9
				"tertiary":  "#0ea5e9", // Sky 9
				"success":   "#30a46c",
				"warning":   "#ffb224", // Amber 9
				"error":     "#e5484d", // Red 9
				"info":      "#0090ff", // Blue 9
			},
		},
		"slate": {
			Name:   "slate",
			Colors: Colors{"primary": "#64748b", "secondary": "#0f172a", "neutral": "#64748b"},
		},
		"indigo": {
			Name:   "indigo",
			Colors: Colors{"primary": "#4f46e5", "secondary": "#f97316"},
		},
		"rose": {
			Name:   "rose",
			Colors: Colors{"primary": "#e11d48", "secondary": "#64748b"},
		},
		"emerald": {
			Name:   "emerald",
			Colors: Colors{"primary": "#059669", "secondary": "#f59e0b"},
		},
		"navy": {
			Name:   "navy",
			Colors: Colors{"primary": "#000080", "secondary": "#fbbf24"},
		},
		"purple": {
			Name:   "purple",
			Colors: Colors{"primary": "#a855f7", "secondary": "#ec4899"},
		},
		"teal": {
			Name:   "teal",
			Colors: Colors{"primary": "#14b8a6", "secondary": "#f87171"},
		},
		"amber": {
			Name:   "amber",
			Colors: Colors{"primary": "#f59e0b", "secondary": "#6366f1"},
		},
	}

	p, ok := palettes[name]
	if !ok {
		return nil
	}
	p.Colors = p.Colors.WithDefaults()
	return p
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	names := []string{
		"littlebrand", "radix", "slate", "indigo", "rose", "emerald",
		"navy", "purple", "teal", "amber",
	}
	var palettes []*Palette
	for _, name := range names {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}
