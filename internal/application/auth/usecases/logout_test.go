package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutUseCase_RevokesByDigest(t *testing.T) {
	sessionRepo := &mockSessionRepo{}
	uc := NewLogoutUseCase(sessionRepo, &mockTokenService{}, noopLogger{})

	err := uc.Execute(context.Background(), "signed-token")
	require.NoError(t, err)

	assert.Equal(t, "digest:signed-token", sessionRepo.deletedTokenHash)
}

func TestLogoutUseCase_Idempotent(t *testing.T) {
	sessionRepo := &mockSessionRepo{}
	uc := NewLogoutUseCase(sessionRepo, &mockTokenService{}, noopLogger{})

	// Deleting an unknown digest is not an error, so a double logout succeeds
	assert.NoError(t, uc.Execute(context.Background(), "signed-token"))
	assert.NoError(t, uc.Execute(context.Background(), "signed-token"))
}
