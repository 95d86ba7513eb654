// SPDX-License-Identifier: MIT

// Package preview draws colour scales as terminal swatches.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/tokens"
)

const swatchWidth = 8

// Preview renders swatches for a single output
type Preview struct {
	r *lipgloss.Renderer

	label  lipgloss.Style
	value  lipgloss.Style
	header lipgloss.Style
}

// New creates a preview writing colour sequences suited to w
func New(w io.Writer) *Preview {
	r := lipgloss.NewRenderer(w)
	return &Preview{
		r:      r,
		label:  r.NewStyle().Width(4).Align(lipgloss.Right).Faint(true),
		value:  r.NewStyle().PaddingLeft(1),
		header: r.NewStyle().Bold(true).MarginBottom(1),
	}
}

func (p *Preview) swatch(c oklch.Color, text string) string {
	fg := lipgloss.Color("#ffffff")
	if tokens.TextOn("", oklch.Format(c)) == tokens.TextOnDark {
		fg = lipgloss.Color("#111111")
	}

	return p.r.NewStyle().
		Width(swatchWidth).
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg).
		Render(text)
}

// Scale renders one row per step: number, swatch, OKLCH value and hex
func (p *Preview) Scale(title string, s scale.Scale) string {
	rows := make([]string, 0, scale.Steps+1)
	if title != "" {
		rows = append(rows, p.header.Render(fmt.Sprintf("%s (%s)", title, s.Mode)))
	}

	for n := 1; n <= scale.Steps; n++ {
		c := s.Step(n)
		marker := ""
		if n == scale.BaseStep {
			marker = " base"
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			p.label.Render(fmt.Sprintf("%d", n)),
			" ",
			p.swatch(c, ""),
			p.value.Render(fmt.Sprintf("%-26s %s%s", oklch.Format(c), c.Hex(), marker)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Strip renders the whole scale as one line of swatches
func (p *Preview) Strip(s scale.Scale) string {
	cells := make([]string, 0, scale.Steps)
	for n := 1; n <= scale.Steps; n++ {
		cells = append(cells, p.swatch(s.Step(n), fmt.Sprintf("%d", n)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Roles renders a labelled strip for each role in order
func (p *Preview) Roles(order []string, scales map[string]scale.Scale) string {
	width := 0
	for _, role := range order {
		if len(role) > width {
			width = len(role)
		}
	}

	var b strings.Builder
	for _, role := range order {
		s, ok := scales[role]
		if !ok {
			continue
		}
		b.WriteString(p.r.NewStyle().Width(width + 1).Render(role))
		b.WriteString(p.Strip(s))
		b.WriteString("\n")
	}
	return b.String()
}
