package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/twiddle/internal/game"
	"github.com/robalobadob/twiddle/internal/prefs"
)

// palette holds the styles of one colour theme.
type palette struct {
	title   lipgloss.Style
	empty   lipgloss.Style // untyped cell / unplayed key
	typed   lipgloss.Style // typed, not yet scored
	correct lipgloss.Style
	present lipgloss.Style
	miss    lipgloss.Style
	alert   lipgloss.Style
	help    lipgloss.Style
}

func cell(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

var palettes = map[string]palette{
	prefs.ThemeDark: {
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f8f8f8")),
		empty:   cell("#818384", "#121213"),
		typed:   cell("#f8f8f8", "#3a3a3c"),
		correct: cell("#ffffff", "#538d4e"),
		present: cell("#ffffff", "#b59f3b"),
		miss:    cell("#ffffff", "#3a3a3c").Faint(true),
		alert:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5793a")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	},
	prefs.ThemeLight: {
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a1a1b")),
		empty:   cell("#878a8c", "#ffffff"),
		typed:   cell("#1a1a1b", "#d3d6da"),
		correct: cell("#ffffff", "#6aaa64"),
		present: cell("#ffffff", "#c9b458"),
		miss:    cell("#ffffff", "#787c7e"),
		alert:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c0392b")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	},
}

func paletteFor(theme string) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[prefs.DefaultTheme]
}

func (p palette) state(s game.CharState) lipgloss.Style {
	switch s {
	case game.Correct:
		return p.correct
	case game.Present:
		return p.present
	default:
		return p.miss
	}
}
