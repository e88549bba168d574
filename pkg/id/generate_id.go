package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewLoanID returns a business loan id of the form LN-<unix ms>-<4 hex>.
// The random suffix keeps two pledges in the same millisecond distinct.
func NewLoanID() string {
	b := make([]byte, 2)
	_, _ = rand.Read(b)
	return fmt.Sprintf("LN-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}
