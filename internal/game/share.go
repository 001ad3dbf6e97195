package game

import (
	"fmt"
	"strings"
)

var shareGlyphs = map[Mark]string{
	MarkCorrect: "🟩",
	MarkPresent: "🟨",
	MarkAbsent:  "⬛",
}

// ShareText renders a spoiler-free summary of a finished game, one emoji
// row per guess. It is empty while the game is in progress.
func ShareText(s State) string {
	var score string
	switch s.Status() {
	case StatusWon:
		score = fmt.Sprint(s.ActiveRow())
	case StatusLost:
		score = "X"
	default:
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "tiles %s/%d", score, Rows)
	for _, g := range s.slots {
		if g == "" {
			break
		}
		b.WriteByte('\n')
		for _, m := range Score(g, s.answer) {
			b.WriteString(shareGlyphs[m])
		}
	}
	return b.String()
}
