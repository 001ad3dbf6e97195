package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

type fixedWord string

func (f fixedWord) RandomAnswer() string { return string(f) }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	escape    = tea.KeyMsg{Type: tea.KeyEsc}
)

// send feeds msgs through Update and returns the final model and last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func word(w string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range w {
		msgs = append(msgs, runes(string(r)))
	}
	return append(msgs, enter)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{enter, game.KeyEnter},
		{backspace, game.KeyBackspace},
		{tea.KeyMsg{Type: tea.KeyDelete}, game.KeyDelete},
		{runes("a"), "a"},
		{runes("ab"), ""},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, ""},
		{tea.KeyMsg{Type: tea.KeyTab}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gameKey(tt.msg), tt.msg.String())
	}
}

func TestTypingAndSubmitting(t *testing.T) {
	m := New(fixedWord("crane"))
	m, _ = send(t, m, runes("t"), runes("r"), runes("x"), backspace)
	assert.Equal(t, "tr", m.State().Buffer())

	m, _ = send(t, m, word("ace")...)
	assert.Equal(t, "trace", m.State().Guesses()[0])
	assert.Equal(t, game.StatusInProgress, m.State().Status())
}

func TestLettersDoNotQuitWhilePlaying(t *testing.T) {
	m := New(fixedWord("crane"))
	m, cmd := send(t, m, runes("q"), runes("r"), runes("c"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "qrc", m.State().Buffer())
}

func TestEscQuits(t *testing.T) {
	_, cmd := send(t, New(fixedWord("crane")), escape)
	assert.True(t, isQuit(cmd))
}

func TestPostGameBindings(t *testing.T) {
	m := New(fixedWord("crane"))
	var copied string
	m.copyText = func(s string) error { copied = s; return nil }

	m, _ = send(t, m, word("crane")...)
	require.Equal(t, game.StatusWon, m.State().Status())
	assert.Contains(t, m.View(), "CRANE")

	// Game keys are inert now.
	before := m.State()
	m, _ = send(t, m, runes("x"), backspace)
	assert.Equal(t, before, m.State())

	m, _ = send(t, m, runes("c"))
	assert.Equal(t, "tiles 1/6\n🟩🟩🟩🟩🟩", copied)
	assert.Contains(t, m.View(), "copied")

	m, _ = send(t, m, runes("r"))
	assert.Equal(t, game.StatusInProgress, m.State().Status())
	assert.Equal(t, [game.Rows]string{}, m.State().Guesses())

	m, _ = send(t, m, word("crane")...)
	require.Equal(t, game.StatusWon, m.State().Status())
	m, _ = send(t, m, enter)
	assert.Equal(t, game.StatusInProgress, m.State().Status())
	assert.Equal(t, [game.Rows]string{}, m.State().Guesses())

	m, _ = send(t, m, word("crane")...)
	_, cmd := send(t, m, runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestCopyFailureIsReported(t *testing.T) {
	m := New(fixedWord("crane"))
	m.copyText = func(string) error { return errors.New("no clipboard") }
	m, _ = send(t, m, word("crane")...)
	m, _ = send(t, m, runes("c"))
	assert.Contains(t, m.View(), "no clipboard")
}

func TestRenderText(t *testing.T) {
	s := game.Start(fixedWord("crane"))
	for _, k := range []string{"t", "r", "a", "c", "e", game.KeyEnter, "c", "r"} {
		s = s.HandleKey(k)
	}
	lines := strings.Split(RenderText(s.Frame()), "\n")
	require.Len(t, lines, game.Rows)
	assert.Equal(t, "T R A C E  ⬛🟩🟩🟨🟩", lines[0])
	assert.Equal(t, "C R _ _ _", lines[1])
	assert.Equal(t, "_ _ _ _ _", lines[5])
}

func TestRunPlain(t *testing.T) {
	in := strings.NewReader("trace\nslat\n-\n-\n-\n-\ncrane\nextra\n")
	var out bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), fixedWord("crane"), in, &out))

	text := out.String()
	assert.Contains(t, text, "T R A C E  ⬛🟩🟩🟨🟩")
	assert.Contains(t, text, "Solved: CRANE")
	assert.Contains(t, text, "tiles 2/6")
}

func TestRunPlainShortLinesDoNotJoin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("cra\nnes\n")
	require.NoError(t, RunPlain(context.Background(), fixedWord("crane"), in, &out))

	assert.NotContains(t, out.String(), "C R A N E")
	assert.NotContains(t, out.String(), "Solved")
}

func TestRunPlainEOF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), fixedWord("crane"), strings.NewReader("trace\n"), &out))
	assert.NotContains(t, out.String(), "CRANE")
}
