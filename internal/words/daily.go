package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Daily serves one answer per UTC day from a List. The day's word is
// List.At(HMAC-SHA256(Salt, "YYYY-MM-DD") mod Len), so the schedule cannot
// be read ahead without the salt.
type Daily struct {
	List *List
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// RandomAnswer returns today's answer. The name satisfies game.WordSource;
// within one day the result is fixed.
func (d Daily) RandomAnswer() string {
	return d.On(d.now())
}

// On returns the answer scheduled for the UTC day containing t.
func (d Daily) On(t time.Time) string {
	return d.List.At(d.index(DateKey(t)))
}

// Len returns the size of the underlying list.
func (d Daily) Len() int { return d.List.Len() }

func (d Daily) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Daily) index(day string) int {
	n := d.List.Len()
	if n == 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(d.Salt))
	h.Write([]byte(day))
	v := binary.BigEndian.Uint64(h.Sum(nil)[:8])
	return int(v % uint64(n))
}

// DateKey returns t's date in UTC as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
