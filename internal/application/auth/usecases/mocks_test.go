package usecases

import (
	"context"
	"time"

	"clubcms/internal/domain/user"
	"clubcms/internal/shared/logger"
)

type mockUserRepo struct {
	user *user.User
	err  error

	updatedPasswordHash string
	lastLoginSet        bool
	updateErr           error
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return m.err }

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return m.user, m.err
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.user, m.err
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedPasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastLoginSet = true
	return nil
}

type mockSessionRepo struct {
	session *user.Session
	getErr  error

	created          *user.Session
	createErr        error
	deletedTokenHash string
	deletedUserID    uint
	sweepCalled      bool
}

func (m *mockSessionRepo) Create(ctx context.Context, s *user.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = s
	return nil
}

func (m *mockSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*user.Session, error) {
	return m.session, m.getErr
}

func (m *mockSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	m.deletedTokenHash = tokenHash
	return nil
}

func (m *mockSessionRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	m.deletedUserID = userID
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	m.sweepCalled = true
	return nil
}

type mockHasher struct {
	verifyErr error
	hashErr   error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error { return m.verifyErr }

type mockTokenService struct {
	token     string
	expiresAt time.Time
	err       error
}

func (m *mockTokenService) Generate(userID uint, username, role string) (string, time.Time, error) {
	return m.token, m.expiresAt, m.err
}

func (m *mockTokenService) Hash(token string) string { return "digest:" + token }

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
