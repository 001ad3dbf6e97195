package game

// Cell is one tile of the board as a renderer sees it.
type Cell struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark"`
	Filled bool   `json:"filled"`
}

// Row is one guess slot.
type Row [Cols]Cell

// Frame is everything a renderer needs for one paint of the board.
// Answer is only populated after the game has ended.
type Frame struct {
	Status       Status    `json:"status"`
	Answer       string    `json:"answer,omitempty"`
	Rows         [Rows]Row `json:"rows"`
	Buffer       string    `json:"buffer"`
	ActiveRow    int       `json:"activeRow"`
	ActiveColumn int       `json:"activeColumn"`
}

// Frame computes the rendering view of s. Rows before the active row are
// scored; the active row only reports which cells hold typed letters.
func (s State) Frame() Frame {
	f := Frame{
		Status:       s.Status(),
		Buffer:       s.buffer,
		ActiveRow:    s.ActiveRow(),
		ActiveColumn: s.ActiveColumn(),
	}
	if ans, ok := s.Answer(); ok {
		f.Answer = ans
	}
	for r := 0; r < Rows; r++ {
		switch {
		case r < f.ActiveRow:
			f.Rows[r] = scoredRow(s.slots[r], s.answer)
		case r == f.ActiveRow:
			f.Rows[r] = typingRow(s.buffer)
		default:
			f.Rows[r] = typingRow("")
		}
	}
	return f
}

func scoredRow(guess, answer string) Row {
	var row Row
	marks := Score(guess, answer)
	for i := range row {
		row[i] = Cell{Mark: marks[i]}
		if i < len(guess) {
			row[i].Letter = guess[i : i+1]
			row[i].Filled = true
		}
	}
	return row
}

func typingRow(buf string) Row {
	var row Row
	for i := range row {
		row[i] = Cell{Mark: MarkEmpty}
		if i < len(buf) {
			row[i].Letter = buf[i : i+1]
			row[i].Filled = true
		}
	}
	return row
}
