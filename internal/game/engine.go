// internal/game/engine.go
//
// Game controller for a single session.
// Responsibilities:
//   - Start and restart games with a fresh random answer.
//   - Apply key events to the input buffer and commit guesses.
//   - Derive status, active row and active column from the canonical state.
//
// Invalid input is never an error: anything HandleKey does not understand
// leaves the state unchanged.

package game

import "strings"

// Start returns a fresh game with an answer drawn from src.
func Start(src WordSource) State {
	return State{answer: strings.ToLower(src.RandomAnswer())}
}

// Restart starts a new game once the current one is over.
// While a game is still in progress it returns s unchanged; a zero State
// (no answer yet) always starts.
func (s State) Restart(src WordSource) State {
	if s.answer != "" && s.Status() == StatusInProgress {
		return s
	}
	return Start(src)
}

// HandleKey consumes a single key identifier and returns the resulting state.
//
// Rules:
//   - Finished games ignore every key.
//   - A single ASCII letter is appended (lowercased) while the buffer has room.
//   - Backspace/Delete drops the last buffered letter.
//   - Enter commits a full buffer into the first unfilled slot.
//   - Everything else, including "" and Enter on a short buffer, is ignored.
func (s State) HandleKey(key string) State {
	if s.Status() != StatusInProgress {
		return s
	}
	switch {
	case isLetter(key):
		if len(s.buffer) < Cols {
			s.buffer += strings.ToLower(key)
		}
	case strings.EqualFold(key, KeyBackspace), strings.EqualFold(key, KeyDelete):
		if s.buffer != "" {
			s.buffer = s.buffer[:len(s.buffer)-1]
		}
	case strings.EqualFold(key, KeyEnter):
		if len(s.buffer) == Cols {
			s.slots[s.ActiveRow()] = s.buffer
			s.buffer = ""
		}
	}
	return s
}

// Status derives the game status from the committed guesses.
func (s State) Status() Status {
	for _, g := range s.slots {
		if g == "" {
			break
		}
		if g == s.answer {
			return StatusWon
		}
	}
	if s.slots[Rows-1] != "" {
		return StatusLost
	}
	return StatusInProgress
}

// ActiveRow is the index of the first unfilled slot, or Rows when every
// slot has been used.
func (s State) ActiveRow() int {
	for i, g := range s.slots {
		if g == "" {
			return i
		}
	}
	return Rows
}

// ActiveColumn is the index of the last typed letter (-1 when the buffer is empty).
func (s State) ActiveColumn() int { return len(s.buffer) - 1 }

// Buffer returns the letters typed for the active row.
func (s State) Buffer() string { return s.buffer }

// Guesses returns the six slots in order; unfilled slots are "".
func (s State) Guesses() [Rows]string { return s.slots }

// Answer reveals the solution once the game is over.
// ok is false while the game is in progress.
func (s State) Answer() (answer string, ok bool) {
	if s.Status() == StatusInProgress {
		return "", false
	}
	return s.answer, true
}

// isLetter reports whether key is exactly one ASCII letter.
func isLetter(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// isWord reports whether w is exactly Cols lowercase ASCII letters.
func isWord(w string) bool {
	if len(w) != Cols {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
