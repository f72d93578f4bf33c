// internal/tui/model.go
//
// Terminal front end for one game.
//   - Letters, Enter and Backspace go straight to the engine.
//   - The grid and keyboard are redrawn from a snapshot after every key.
//   - ctrl+t toggles the colour theme and saves it in the preference store.
//   - esc / ctrl+c quits.
//
// The model runs inside the bubbletea event loop only; it is not safe for
// use from other goroutines.

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/twiddle/internal/game"
	"github.com/robalobadob/twiddle/internal/prefs"
)

// Alert texts shown under the grid.
const (
	AlertNotInList = "Not in word list."
	AlertWin       = "Yay, you win!"
	alertLoseFmt   = "Sorry, you lose! We were looking for '%s'."
)

func loseAlert(solution string) string { return fmt.Sprintf(alertLoseFmt, solution) }

type themeLoadedMsg struct {
	theme string
	err   error
}

type themeSavedMsg struct{ err error }

// Model is the bubbletea model of a game in progress.
type Model struct {
	ctx      context.Context
	game     *game.Game
	prefs    prefs.Store // nil disables theme persistence
	keyboard *Keyboard

	theme    string
	alert    string
	quitting bool
}

// New builds a model around g. store may be nil.
func New(ctx context.Context, g *game.Game, store prefs.Store) Model {
	return Model{
		ctx:      ctx,
		game:     g,
		prefs:    store,
		keyboard: NewKeyboard(),
		theme:    prefs.DefaultTheme,
	}
}

// Theme is the active colour theme.
func (m Model) Theme() string { return m.theme }

// Alert is the message currently shown under the grid, if any.
func (m Model) Alert() string { return m.alert }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	store, ctx := m.prefs, m.ctx
	return func() tea.Msg {
		v, err := store.Get(ctx, prefs.KeyTheme, prefs.DefaultTheme)
		return themeLoadedMsg{theme: v, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case themeLoadedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("load theme")
			return m, nil
		}
		if prefs.Validate(prefs.KeyTheme, msg.theme) == nil {
			m.theme = msg.theme
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("save theme")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+t":
			m.theme = prefs.Toggle(m.theme)
			return m, m.saveTheme()
		case "enter":
			return m.apply(game.Enter), nil
		case "backspace":
			return m.apply(game.Backspace), nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if k, err := game.ParseKey(string(msg.Runes)); err == nil && k.IsLetter() {
				return m.apply(k), nil
			}
		}
	}
	return m, nil
}

func (m Model) saveTheme() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	store, ctx, theme := m.prefs, m.ctx, m.theme
	return func() tea.Msg {
		return themeSavedMsg{err: store.Set(ctx, prefs.KeyTheme, theme)}
	}
}

// apply feeds one key to the engine and turns the result into UI state.
func (m Model) apply(k game.Key) Model {
	change := m.game.EnterChar(k)
	log.Debug().Str("key", k.String()).Str("change", change.Kind()).Msg("key")

	switch ev := change.(type) {
	case game.AddedChar, game.RemovedChar:
		m.alert = ""
	case game.InvalidAttempt:
		m.alert = AlertNotInList
	case game.GameError:
		m.alert = ev.Message
	case game.AttemptValidated:
		m.keyboard.Record(ev.Word, ev.CharStates)
		m.alert = ""
		if ev.IsFinished {
			if ev.IsWin {
				m.alert = AlertWin
			} else {
				m.alert = loseAlert(ev.Solution)
			}
		}
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := paletteFor(m.theme)
	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(p.title.Render("T W I D D L E"))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(p, snap))
	b.WriteString("\n\n")
	if m.alert != "" {
		b.WriteString(p.alert.Render(m.alert))
	}
	b.WriteString("\n\n")
	b.WriteString(renderKeyboard(p, m.keyboard))
	b.WriteString("\n\n")
	b.WriteString(p.help.Render("letters type · enter submit · backspace delete · ctrl+t theme · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func renderGrid(p palette, snap game.Snapshot) string {
	rows := make([]string, len(snap.Attempts))
	for i, a := range snap.Attempts {
		letters := []rune(a.Word)
		cells := make([]string, snap.WordLength)
		for j := range cells {
			switch {
			case j >= len(letters):
				cells[j] = p.empty.Render("·")
			case a.IsValidated:
				cells[j] = p.state(a.CharStates[j]).Render(string(letters[j]))
			default:
				cells[j] = p.typed.Render(string(letters[j]))
			}
		}
		rows[i] = strings.Join(cells, " ")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderKeyboard(p palette, k *Keyboard) string {
	rows := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			style := p.empty
			if s, played := k.State(r); played {
				style = p.state(s)
			}
			keys = append(keys, style.Render(string(r)))
		}
		rows[i] = strings.Join(keys, "")
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// Run plays g in the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, g *game.Game, store prefs.Store) error {
	_, err := tea.NewProgram(New(ctx, g, store), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
