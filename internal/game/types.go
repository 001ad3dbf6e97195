// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-tile classification of a guessed letter.
//   - Status: derived end-of-game condition.
//   - State: the single owned record for one game.
//   - WordSource: where answers come from.

package game

// Board dimensions.
const (
	Rows = 6 // guess slots per game
	Cols = 5 // letters per word
)

// Key identifiers understood by HandleKey besides single letters.
// Matching is case-insensitive, so both browser ("Enter") and
// terminal ("enter") spellings are accepted.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
)

// Mark represents the evaluation result for a single tile.
//   - "correct": letter is in the answer at this position.
//   - "present": letter is in the answer elsewhere (after duplicate accounting).
//   - "absent":  letter is not (or no longer) available in the answer.
//   - "empty":   nothing to score in this cell.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
	MarkEmpty   Mark = "empty"
)

// Status is the coarse state of a game. It is always derived from the
// guess slots and the answer, never stored.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// WordSource supplies answers for new games.
type WordSource interface {
	RandomAnswer() string
}

// State holds a single game. It is a comparable value: transitions return
// a new State and never mutate the receiver.
type State struct {
	answer string       // the solution word (lowercase)
	slots  [Rows]string // committed guesses; "" marks an unfilled slot
	buffer string       // letters typed for the active row (0..Cols)
}
