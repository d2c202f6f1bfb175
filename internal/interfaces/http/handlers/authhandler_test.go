package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcms/internal/application/auth/usecases"
	"clubcms/internal/domain/user"
	"clubcms/internal/interfaces/http/handlers/testutil"
	"clubcms/internal/shared/errors"
)

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockLogoutUC struct {
	err   error
	token string
}

func (m *mockLogoutUC) Execute(ctx context.Context, token string) error {
	m.token = token
	return m.err
}

type mockChangePasswordUC struct {
	err error
	cmd usecases.ChangePasswordCommand
}

func (m *mockChangePasswordUC) Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error {
	m.cmd = cmd
	return m.err
}

func newTestAuthHandler(loginUC loginUseCase, logoutUC logoutUseCase, changeUC changePasswordUseCase) *AuthHandler {
	return NewAuthHandler(loginUC, logoutUC, changeUC, testutil.NewMockLogger())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{result: &usecases.LoginResult{
		Token: "signed-token",
		User:  user.Profile{ID: 1, Username: "admin", Role: "admin"},
	}}
	handler := newTestAuthHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data struct {
		Token string       `json:"token"`
		User  user.Profile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "signed-token", data.Token)
	assert.Equal(t, "admin", data.User.Username)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"})
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewInvalidCredentialsError()}
	handler := newTestAuthHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeInvalidCredentials), resp.Error.Type)
}

func TestAuthHandler_Login_DisabledAccount(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewAccountDisabledError()}
	handler := newTestAuthHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	handler.Login(c)

	// disabled accounts answer differently from bad credentials
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Logout_PassesMiddlewareToken(t *testing.T) {
	mockUC := &mockLogoutUC{}
	handler := newTestAuthHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/logout", nil)
	testutil.SetAuthContext(c, 1, "admin", "admin")
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-token", mockUC.token)
}

func TestAuthHandler_Verify(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/verify", nil)
	testutil.SetAuthContext(c, 7, "admin", "admin")
	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		User struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, uint(7), data.User.ID)
	assert.Equal(t, "admin", data.User.Username)
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	mockUC := &mockChangePasswordUC{}
	handler := newTestAuthHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/change-password", ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "new-password",
	})
	testutil.SetAuthContext(c, 7, "admin", "admin")
	handler.ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.cmd.UserID)
	assert.Equal(t, "new-password", mockUC.cmd.NewPassword)
}

func TestAuthHandler_ChangePassword_WeakPassword(t *testing.T) {
	mockUC := &mockChangePasswordUC{err: errors.NewWeakPasswordError(6)}
	handler := newTestAuthHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/change-password", ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "short",
	})
	testutil.SetAuthContext(c, 7, "admin", "admin")
	handler.ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeWeakPassword), resp.Error.Type)
}
