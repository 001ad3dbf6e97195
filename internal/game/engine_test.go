package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedWord always answers with itself.
type fixedWord string

func (f fixedWord) RandomAnswer() string { return string(f) }

// cycleWords hands out its words in order.
type cycleWords struct {
	words []string
	n     int
}

func (c *cycleWords) RandomAnswer() string {
	w := c.words[c.n%len(c.words)]
	c.n++
	return w
}

func typeWord(s State, w string) State {
	for _, r := range w {
		s = s.HandleKey(string(r))
	}
	return s.HandleKey(KeyEnter)
}

func TestStart(t *testing.T) {
	s := Start(fixedWord("CRANE"))
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, "", s.Buffer())
	assert.Equal(t, [Rows]string{}, s.Guesses())
	assert.Equal(t, 0, s.ActiveRow())
	assert.Equal(t, -1, s.ActiveColumn())

	_, ok := s.Answer()
	assert.False(t, ok, "answer must stay hidden during play")
}

func TestHandleKeyTyping(t *testing.T) {
	s := Start(fixedWord("crane"))

	s = s.HandleKey("T")
	s = s.HandleKey("r")
	assert.Equal(t, "tr", s.Buffer())
	assert.Equal(t, 1, s.ActiveColumn())

	for _, k := range []string{"a", "c", "e", "x", "y"} {
		s = s.HandleKey(k)
	}
	assert.Equal(t, "trace", s.Buffer(), "typing past five letters is ignored")

	s = s.HandleKey(KeyBackspace)
	assert.Equal(t, "trac", s.Buffer())
	s = s.HandleKey("delete")
	assert.Equal(t, "tra", s.Buffer())
}

func TestHandleKeyIgnoresNoise(t *testing.T) {
	s := Start(fixedWord("crane")).HandleKey("c")
	for _, k := range []string{"", "Shift", "ArrowLeft", "1", " ", "ab", "é", "Tab", "\x00"} {
		assert.Equal(t, s, s.HandleKey(k), "key %q", k)
	}
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	s := Start(fixedWord("crane"))
	assert.Equal(t, s, s.HandleKey(KeyBackspace))
}

func TestEnterNeedsFullBuffer(t *testing.T) {
	s := Start(fixedWord("crane"))
	for _, k := range []string{"c", "r", "a", "n"} {
		s = s.HandleKey(k)
	}
	assert.Equal(t, s, s.HandleKey(KeyEnter))
	assert.Equal(t, 0, s.ActiveRow())

	s = s.HandleKey("k").HandleKey("enter")
	assert.Equal(t, "crank", s.Guesses()[0])
	assert.Equal(t, "", s.Buffer())
	assert.Equal(t, 1, s.ActiveRow())
}

func TestAcceptsAnyFiveLetters(t *testing.T) {
	s := typeWord(Start(fixedWord("crane")), "zzzzz")
	assert.Equal(t, "zzzzz", s.Guesses()[0])
}

func TestWinOnThirdAttempt(t *testing.T) {
	s := Start(fixedWord("crane"))
	s = typeWord(s, "slate")
	s = typeWord(s, "trace")
	require.Equal(t, StatusInProgress, s.Status())
	s = typeWord(s, "crane")

	assert.Equal(t, StatusWon, s.Status())
	g := s.Guesses()
	assert.Equal(t, "", g[3])
	assert.Equal(t, "", g[4])
	assert.Equal(t, "", g[5])
	assert.Equal(t, 3, s.ActiveRow())

	ans, ok := s.Answer()
	assert.True(t, ok)
	assert.Equal(t, "crane", ans)
}

func TestLossAfterSixthGuess(t *testing.T) {
	s := Start(fixedWord("crane"))
	for i, w := range []string{"aaaaa", "bbbbb", "ddddd", "fffff", "ggggg"} {
		s = typeWord(s, w)
		require.Equal(t, StatusInProgress, s.Status(), "after guess %d", i+1)
	}
	s = typeWord(s, "hhhhh")
	assert.Equal(t, StatusLost, s.Status())
	assert.Equal(t, Rows, s.ActiveRow())
}

func TestFinishedGameIgnoresKeys(t *testing.T) {
	won := typeWord(Start(fixedWord("crane")), "crane")
	require.Equal(t, StatusWon, won.Status())

	for _, k := range []string{"a", KeyBackspace, KeyEnter, "Z", ""} {
		assert.Equal(t, won, won.HandleKey(k))
	}
}

func TestBufferStaysBounded(t *testing.T) {
	keys := []string{"a", "b", KeyEnter, "c", "d", "e", "f", "g", "h", KeyBackspace, KeyEnter, "x", KeyBackspace, KeyBackspace, KeyBackspace, KeyBackspace, KeyBackspace, KeyBackspace, KeyBackspace}
	s := Start(fixedWord("crane"))
	for i := 0; i < 20; i++ {
		for _, k := range keys {
			s = s.HandleKey(k)
			assert.GreaterOrEqual(t, len(s.Buffer()), 0)
			assert.LessOrEqual(t, len(s.Buffer()), Cols)
		}
	}
}

func TestRestart(t *testing.T) {
	src := &cycleWords{words: []string{"crane", "slate"}}
	s := Start(src)
	s = typeWord(s, "crane")
	require.Equal(t, StatusWon, s.Status())

	s = s.Restart(src)
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, [Rows]string{}, s.Guesses())
	assert.Equal(t, "", s.Buffer())

	// Restart is a no-op while playing.
	s = s.HandleKey("q")
	assert.Equal(t, s, s.Restart(src))

	s = typeWord(s.HandleKey(KeyBackspace), "slate")
	ans, _ := s.Answer()
	assert.Equal(t, "slate", ans)
}

func TestRestartFromZeroState(t *testing.T) {
	var s State
	s = s.Restart(fixedWord("crane"))
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, "crane", typeWord(s, "crane").Snapshot().Answer)
}
