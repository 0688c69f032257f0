// internal/history/starter.go
//
// Deterministic starter-word selection. Every caller asking on the same
// date gets the same opening suggestion, without storing anything.

package history

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StarterIndex returns a deterministic dictionary index for a date using
// HMAC(salt, YYYY-MM-DD) % dictLen.
func StarterIndex(date time.Time, salt string, dictLen int) int {
	if dictLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(dictLen))
}
