package usecases

import "time"

// TokenService issues signed tokens and digests them for the session ledger.
type TokenService interface {
	Generate(userID uint, username, role string) (token string, expiresAt time.Time, err error)
	Hash(token string) string
}
