// Package daily picks a deterministic solution per calendar day, so every
// player of the daily mode gets the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/twiddle/internal/dictionary"
)

// DateKey formats the UTC calendar day of t, e.g. "2026-10-16".
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a day to an index in [0, n). The mapping is keyed by salt
// so the sequence of daily words cannot be read off the word list.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Solution returns the day's word from the dictionary's sorted entries.
func Solution(d *dictionary.Dictionary, date time.Time, salt string) (string, error) {
	entries := d.Entries()
	if len(entries) == 0 {
		return "", dictionary.ErrEmpty
	}
	return entries[WordIndex(date, salt, len(entries))], nil
}
