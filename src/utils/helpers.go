package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GenerateConfirmationCode returns a 16-character uppercase hex code for a
// ticket. Uniqueness across tickets is enforced by the database constraint.
func GenerateConfirmationCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
