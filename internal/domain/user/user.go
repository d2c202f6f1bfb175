// Package user holds the credential store entities and repository contracts.
package user

import (
	"context"
	"time"
)

// User is a credential-store record. PasswordHash is never serialized; the
// Profile projection is the only shape handed to the outside.
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of a user.
type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// PasswordHasher abstracts the one-way password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// Repository is the persistence contract for users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByUsername does a case-sensitive exact match. Returns a not-found
	// error when no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}
