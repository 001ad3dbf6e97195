// internal/game/score.go
//
// Tile scoring with standard duplicate-letter semantics.

package game

// Score classifies each position of guess against answer.
//
// Pass 1 marks exact matches as correct and counts, per letter, how many
// answer occurrences those matches consumed. Pass 2 walks the remaining
// positions left to right: a letter is present while the answer still has
// unconsumed occurrences of it, and absent once they run out. Positions
// beyond the end of guess are empty.
//
// A letter that appears once in the answer but twice in the guess is
// therefore reported only once.
func Score(guess, answer string) [Cols]Mark {
	var res [Cols]Mark
	var budget [26]int // unconsumed answer occurrences per letter

	for i := 0; i < Cols && i < len(answer); i++ {
		if j := idx(answer[i]); j >= 0 {
			budget[j]++
		}
	}

	// First pass: exact matches consume their letter.
	for i := 0; i < Cols; i++ {
		switch {
		case i >= len(guess):
			res[i] = MarkEmpty
		case i < len(answer) && guess[i] == answer[i]:
			res[i] = MarkCorrect
			if j := idx(guess[i]); j >= 0 {
				budget[j]--
			}
		}
	}

	// Second pass: resolve present/absent for the rest.
	for i := 0; i < Cols && i < len(guess); i++ {
		if res[i] == MarkCorrect {
			continue
		}
		if j := idx(guess[i]); j >= 0 && budget[j] > 0 {
			res[i] = MarkPresent
			budget[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
