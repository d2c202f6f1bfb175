package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcms/internal/shared/errors"
)

func TestChangePasswordUseCase_Success(t *testing.T) {
	userRepo := &mockUserRepo{user: activeUser()}
	sessionRepo := &mockSessionRepo{}
	uc := NewChangePasswordUseCase(userRepo, sessionRepo, &mockHasher{}, 6, noopLogger{})

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          1,
		CurrentPassword: "admin123",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "hashed:new-password", userRepo.updatedPasswordHash)
	assert.Equal(t, uint(1), sessionRepo.deletedUserID, "every session of the user is revoked")
}

func TestChangePasswordUseCase_WrongCurrentPassword(t *testing.T) {
	hasher := &mockHasher{verifyErr: fmt.Errorf("password verification failed")}
	uc := NewChangePasswordUseCase(&mockUserRepo{user: activeUser()}, &mockSessionRepo{}, hasher, 6, noopLogger{})

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          1,
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, appErr.Type)
}

func TestChangePasswordUseCase_TooShort(t *testing.T) {
	userRepo := &mockUserRepo{user: activeUser()}
	sessionRepo := &mockSessionRepo{}
	uc := NewChangePasswordUseCase(userRepo, sessionRepo, &mockHasher{}, 6, noopLogger{})

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          1,
		CurrentPassword: "admin123",
		NewPassword:     "short",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeWeakPassword, appErr.Type)

	assert.Empty(t, userRepo.updatedPasswordHash)
	assert.Zero(t, sessionRepo.deletedUserID, "sessions untouched on rejected change")
}

func TestChangePasswordUseCase_ExactMinLengthAccepted(t *testing.T) {
	uc := NewChangePasswordUseCase(&mockUserRepo{user: activeUser()}, &mockSessionRepo{}, &mockHasher{}, 6, noopLogger{})

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          1,
		CurrentPassword: "admin123",
		NewPassword:     "sixsix",
	})
	assert.NoError(t, err)
}
