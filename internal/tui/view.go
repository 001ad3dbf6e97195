package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

func (m Model) View() string {
	f := m.state.Frame()

	var parts []string
	switch f.Status {
	case game.StatusWon:
		parts = append(parts, wonStyle.Render(strings.ToUpper(f.Answer)))
	case game.StatusLost:
		parts = append(parts, lostStyle.Render(strings.ToUpper(f.Answer)))
	}

	rows := make([]string, 0, game.Rows)
	for _, row := range f.Rows {
		tiles := make([]string, 0, game.Cols)
		for _, c := range row {
			letter := " "
			if c.Letter != "" {
				letter = strings.ToUpper(c.Letter)
			}
			tiles = append(tiles, tileStyle(c).Render(letter))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, rows...))

	if f.Status == game.StatusInProgress {
		parts = append(parts, m.help.View(playingKeys{m.keys}))
	} else {
		parts = append(parts, m.help.View(finishedKeys{m.keys}))
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

var plainGlyphs = map[game.Mark]string{
	game.MarkCorrect: "🟩",
	game.MarkPresent: "🟨",
	game.MarkAbsent:  "⬛",
}

// RenderText draws a frame without styling, one line per row: the letters
// ("_" for empty cells) followed by the marks of scored rows.
func RenderText(f game.Frame) string {
	var b strings.Builder
	for r, row := range f.Rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		var marks strings.Builder
		for i, c := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			if c.Letter == "" {
				b.WriteByte('_')
			} else {
				b.WriteString(strings.ToUpper(c.Letter))
			}
			marks.WriteString(plainGlyphs[c.Mark])
		}
		if marks.Len() > 0 {
			b.WriteString("  ")
			b.WriteString(marks.String())
		}
	}
	return b.String()
}
