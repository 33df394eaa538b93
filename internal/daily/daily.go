// Package daily derives deterministic per-day seeds, so every player who
// starts a daily run on the same UTC date plays the same puzzle sequence.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// salt keys the date HMAC; changing it reshuffles every day's sequence.
const salt = "huehunt-daily-v1"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns the RNG seed for the given date using
// HMAC-SHA256(salt, YYYY-MM-DD). The sign bit is cleared so the seed is
// stable to display and compare.
func Seed(date time.Time) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) & (1<<63 - 1))
}
