// Package challenge generates the single-use values a wallet must present
// back to prove it is the party that initiated a deposit.
package challenge

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Size is the number of random bytes in a challenge. The transport encoding
// is hex, so a challenge string is 2*Size characters.
const Size = 16

// New returns a fresh, cryptographically unpredictable challenge encoded as
// a hex string.
func New() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate challenge: %w", err)
	}
	return hex.EncodeToString(b), nil
}
