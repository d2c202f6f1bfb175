package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken computes the one-way digest of a serialized token for storage in
// the session ledger. The raw token never touches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
