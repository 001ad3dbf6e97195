package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

// Tile palette, matching the web client.
var (
	colorCorrect = lipgloss.Color("#538d4e")
	colorPresent = lipgloss.Color("#b59f3b")
	colorAbsent  = lipgloss.Color("#3a3a3c")
	colorBorder  = lipgloss.Color("#4b5563")
	colorIdle    = lipgloss.Color("#d1d5db")
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	tileBase = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorIdle)

	tileStyles = map[game.Mark]lipgloss.Style{
		game.MarkCorrect: tileBase.Foreground(lipgloss.Color("#ffffff")).Background(colorCorrect).BorderForeground(colorCorrect),
		game.MarkPresent: tileBase.Foreground(lipgloss.Color("#ffffff")).Background(colorPresent).BorderForeground(colorPresent),
		game.MarkAbsent:  tileBase.Foreground(lipgloss.Color("#ffffff")).Background(colorAbsent).BorderForeground(colorAbsent),
	}
	tileFilled = tileBase.BorderForeground(colorBorder)

	answerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	wonStyle    = answerStyle.Foreground(colorCorrect)
	lostStyle   = answerStyle.Foreground(lipgloss.Color("#dc2626"))
	noticeStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// tileStyle picks the style for one cell.
func tileStyle(c game.Cell) lipgloss.Style {
	if st, ok := tileStyles[c.Mark]; ok {
		return st
	}
	if c.Filled {
		return tileFilled
	}
	return tileBase
}
