package game

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned by FromSnapshot for records that could not
// have been produced by a legal sequence of transitions.
var ErrInvalidSnapshot = errors.New("game: invalid snapshot")

// Snapshot is the persisted form of a State. It carries the answer, so it
// must never be sent to a player; use Frame for that.
type Snapshot struct {
	Answer  string   `json:"answer"`
	Guesses []string `json:"guesses"`
	Buffer  string   `json:"buffer"`
}

// Snapshot exports s for storage. Only filled slots are listed.
func (s State) Snapshot() Snapshot {
	sn := Snapshot{Answer: s.answer, Buffer: s.buffer, Guesses: []string{}}
	for _, g := range s.slots {
		if g == "" {
			break
		}
		sn.Guesses = append(sn.Guesses, g)
	}
	return sn
}

// FromSnapshot rebuilds a State, validating every invariant on the way.
func FromSnapshot(sn Snapshot) (State, error) {
	if !isWord(sn.Answer) {
		return State{}, fmt.Errorf("%w: answer %q", ErrInvalidSnapshot, sn.Answer)
	}
	if len(sn.Guesses) > Rows {
		return State{}, fmt.Errorf("%w: %d guesses", ErrInvalidSnapshot, len(sn.Guesses))
	}
	if len(sn.Buffer) > Cols {
		return State{}, fmt.Errorf("%w: buffer %q", ErrInvalidSnapshot, sn.Buffer)
	}
	for i := 0; i < len(sn.Buffer); i++ {
		if c := sn.Buffer[i]; c < 'a' || c > 'z' {
			return State{}, fmt.Errorf("%w: buffer %q", ErrInvalidSnapshot, sn.Buffer)
		}
	}

	s := State{answer: sn.Answer}
	for i, g := range sn.Guesses {
		if !isWord(g) {
			return State{}, fmt.Errorf("%w: guess %d %q", ErrInvalidSnapshot, i, g)
		}
		if s.Status() != StatusInProgress {
			return State{}, fmt.Errorf("%w: guess %d after game end", ErrInvalidSnapshot, i)
		}
		s.slots[i] = g
	}
	if s.Status() != StatusInProgress && sn.Buffer != "" {
		return State{}, fmt.Errorf("%w: buffer on finished game", ErrInvalidSnapshot)
	}
	s.buffer = sn.Buffer
	return s, nil
}
