package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

// RunPlain plays one game over line-oriented I/O, for pipes and terminals
// without cursor control. Each input line is a fresh guess: leftovers of a
// short line are erased, then the line is typed and submitted. A line
// holding only "-" is a single Backspace. The board is printed after every
// committed guess.
func RunPlain(ctx context.Context, src game.WordSource, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan string)
	go feedKeys(ctx, in, keys)

	s := game.Start(src)
	fmt.Fprintln(out, RenderText(s.Frame()))

	row := s.ActiveRow()
	s = game.Listen(ctx, s, keys, func(s game.State) {
		if s.ActiveRow() == row {
			return
		}
		row = s.ActiveRow()
		fmt.Fprintf(out, "\n%s\n", RenderText(s.Frame()))
	})

	answer, over := s.Answer()
	if !over {
		return ctx.Err()
	}
	if s.Status() == game.StatusWon {
		fmt.Fprintf(out, "\nSolved: %s\n", strings.ToUpper(answer))
	} else {
		fmt.Fprintf(out, "\nThe word was %s\n", strings.ToUpper(answer))
	}
	fmt.Fprintf(out, "\n%s\n", game.ShareText(s))
	return nil
}

// feedKeys turns input lines into key events and closes keys at EOF.
func feedKeys(ctx context.Context, in io.Reader, keys chan<- string) {
	defer close(keys)

	send := func(k string) bool {
		select {
		case keys <- k:
			return true
		case <-ctx.Done():
			return false
		}
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "-" {
			if !send(game.KeyBackspace) {
				return
			}
			continue
		}
		for i := 0; i < game.Cols; i++ {
			if !send(game.KeyBackspace) {
				return
			}
		}
		for _, r := range line {
			if !send(string(r)) {
				return
			}
		}
		if !send(game.KeyEnter) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Msg("read input")
	}
}
