// internal/words/words.go
//
// Provides the answer list for the game engine.
//
// Responsibilities:
//   - Load answers from a configured file or fall back to the embedded default list.
//   - Normalize entries (lowercase, trimmed) and drop anything that is not a
//     five-letter ASCII word.
//   - Draw answers uniformly at random (crypto/rand).
//
// A List is immutable once built; it is safe for concurrent use.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/tiles/assets"
)

// ErrEmpty is returned when no usable word survives normalization.
var ErrEmpty = errors.New("words: answers list is empty")

// List is a fixed set of five-letter answers.
type List struct {
	answers []string
	set     map[string]struct{}
}

// New builds a List from raw entries. Invalid entries and duplicates are dropped.
func New(raw []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w = strings.TrimSpace(strings.ToLower(w))
		if !valid(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	if len(l.answers) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// Load reads answers from path, one per line ('#' starts a comment line).
// An empty path selects the embedded default list.
func Load(path string) (*List, error) {
	if path == "" {
		raw, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("read embedded answers: %w", err)
		}
		return New(raw)
	}
	raw, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers %s: %w", path, err)
	}
	l, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// readWordFile returns the non-comment lines of a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// valid reports whether w is exactly five lowercase ASCII letters.
func valid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a uniformly random answer.
func (l *List) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// At returns the i-th answer in load order.
func (l *List) At(i int) string { return l.answers[i] }

// Len returns the number of answers.
func (l *List) Len() int { return len(l.answers) }
