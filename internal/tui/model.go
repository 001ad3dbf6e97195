// Package tui is the terminal client: a bubbletea program that feeds key
// presses into a game and draws its frame with lipgloss.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

// Model is the bubbletea model for one terminal session.
type Model struct {
	state    game.State
	words    game.WordSource
	keys     KeyMap
	help     help.Model
	copyText func(string) error
	notice   string
	width    int
}

// New starts a game drawn from src.
func New(src game.WordSource) Model {
	return Model{
		state:    game.Start(src),
		words:    src,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		copyText: clipboard.WriteAll,
	}
}

// State returns the current game.
func (m Model) State() game.State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press. While the game is in progress every key
// except Quit belongs to the game; afterwards only the post-game bindings
// are live.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state.Status() == game.StatusInProgress {
		m.state = m.state.HandleKey(gameKey(msg))
		if st := m.state.Status(); st != game.StatusInProgress {
			log.Info().Str("status", string(st)).Int("guesses", m.state.ActiveRow()).Msg("game over")
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Restart):
		m.state = m.state.Restart(m.words)
		m.notice = ""
		log.Debug().Msg("restarted")
	case key.Matches(msg, m.keys.Copy):
		if err := m.copyText(game.ShareText(m.state)); err != nil {
			log.Warn().Err(err).Msg("copy share text")
			m.notice = "could not copy: " + err.Error()
		} else {
			m.notice = "result copied to clipboard"
		}
	case key.Matches(msg, m.keys.Leave):
		return m, tea.Quit
	}
	return m, nil
}

// gameKey translates a bubbletea key into the identifier game.HandleKey expects.
func gameKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return game.KeyEnter
	case tea.KeyBackspace:
		return game.KeyBackspace
	case tea.KeyDelete:
		return game.KeyDelete
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return string(msg.Runes)
		}
	}
	return ""
}
