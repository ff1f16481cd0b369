package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/qrcontacts/internal/client/directory"
)

// palette holds one terminal color per directory color index.
var palette = [directory.PaletteSize]lipgloss.Color{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
}

type styles struct {
	title  lipgloss.Style
	groups [directory.PaletteSize]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) *styles {
	s := &styles{title: r.NewStyle().Bold(color)}
	for i := range s.groups {
		st := r.NewStyle()
		if color {
			st = st.Bold(true).Foreground(palette[i])
		}
		s.groups[i] = st
	}
	return s
}

func (s *styles) group(color int) lipgloss.Style {
	return s.groups[color%directory.PaletteSize]
}
