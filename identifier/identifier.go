// Package identifier generates the random correlator embedded in the OAuth
// state parameter to bind a callback to the login session that initiated it.
package identifier

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	length   = 8
)

// New returns an 8 character alphanumeric session correlator. It holds no
// shared state and is safe to call concurrently.
func New() string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("identifier.New: reading entropy: %v", err))
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
