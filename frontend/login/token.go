package login

import (
	"crypto/rand"
	"encoding/hex"
)

// newSessionToken mints the opaque value stored in the session cookie.
func newSessionToken() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
