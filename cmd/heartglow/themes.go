package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/heartglow/theme"
)

// listThemes prints one line per registered theme with palette swatches
func listThemes(w io.Writer, reg *theme.Registry, active string) {
	r := lipgloss.NewRenderer(w)
	keyStyle := r.NewStyle().Bold(true).Width(10)
	nameStyle := r.NewStyle().Width(10)
	dim := r.NewStyle().Faint(true)
	marker := r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	for i := 0; i < reg.Len(); i++ {
		th, ok := reg.At(i)
		if !ok {
			continue
		}

		var swatch strings.Builder
		for _, c := range th.Colors {
			swatch.WriteString(r.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██"))
		}

		mark := " "
		if th.Key == active {
			mark = marker.Render("*")
		}
		bloom := dim.Render(fmt.Sprintf("bloom %.2f/%.2f/%.2f", th.Bloom.Strength, th.Bloom.Radius, th.Bloom.Threshold))
		fmt.Fprintf(w, "%s %d %s%s%s %s\n", mark, i+1, keyStyle.Render(th.Key), nameStyle.Render(th.Name), swatch.String(), bloom)
	}
}
