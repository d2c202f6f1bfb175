package user

import (
	"context"
	"fmt"
	"time"
)

// Session is the server-side record for one issued token. The raw token is
// never persisted; only its one-way digest. Deleting the record revokes the
// token regardless of its remaining embedded lifetime.
type Session struct {
	ID        uint
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewSession creates a session ledger entry for an issued token.
func NewSession(userID uint, tokenHash string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	return &Session{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// IsExpired reports whether the session's absolute expiry has passed.
func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// SessionRepository is the persistence contract for the session ledger.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetByTokenHash returns the session with the given digest whose expiry
	// is still in the future. Returns a not-found error otherwise.
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	// DeleteByTokenHash revokes a single token. Deleting an unknown digest
	// is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	// DeleteByUserID revokes every outstanding session of one user.
	DeleteByUserID(ctx context.Context, userID uint) error
	// DeleteExpired removes ledger rows whose expiry has passed. Expired
	// rows already fail verification, so this is garbage collection only.
	DeleteExpired(ctx context.Context) error
}
