package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountDisabled    ErrorType = "account_disabled"
	ErrorTypeMissingToken       ErrorType = "missing_token"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeTokenRevoked       ErrorType = "token_revoked"
	ErrorTypeWeakPassword       ErrorType = "weak_password"
)

// AuthError represents authentication-specific errors with enhanced security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Some auth errors (like invalid credentials) are expected and don't need error-level logging.
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message is identical for an unknown username and a wrong password so the
// response cannot be used for username enumeration.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewAccountDisabledError creates an error for disabled accounts
func NewAccountDisabledError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountDisabled,
			Message: "Account is disabled",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewMissingTokenError creates an error for requests without a bearer token
func NewMissingTokenError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeMissingToken,
			Message: "Access token required",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewTokenInvalidError creates an error for tokens that fail signature or
// structure verification, or whose embedded expiry has passed
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid or expired token",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewTokenRevokedError creates an error for tokens whose session record has
// been deleted (logout or password change)
func NewTokenRevokedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenRevoked,
			Message: "Token has been revoked",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewWeakPasswordError creates an error for passwords that violate the
// minimum length policy
func NewWeakPasswordError(minLength int) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeWeakPassword,
			Message: "New password does not meet the minimum length requirement",
			Code:    http.StatusBadRequest,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors via errors.As)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged.
// This reduces log noise from expected auth failures.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
