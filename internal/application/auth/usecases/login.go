package usecases

import (
	"context"
	"fmt"
	"time"

	"clubcms/internal/domain/user"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
	User  user.Profile
}

type LoginUseCase struct {
	userRepo     user.Repository
	sessionRepo  user.SessionRepository
	hasher       user.PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same error as a wrong password so the response cannot be used
			// to probe for usernames
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !existingUser.IsActive {
		return nil, errors.NewAccountDisabledError()
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresAt, err := uc.tokenService.Generate(existingUser.ID, existingUser.Username, existingUser.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := user.NewSession(existingUser.ID, uc.tokenService.Hash(token), expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to build session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to record session", "error", err, "user_id", existingUser.ID)
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	// Non-critical bookkeeping: a failure here must not fail the login
	if err := uc.userRepo.UpdateLastLogin(ctx, existingUser.ID, time.Now().UTC()); err != nil {
		uc.logger.Warnw("failed to update last login", "error", err, "user_id", existingUser.ID)
	}

	// Opportunistic garbage collection of expired ledger rows; expired rows
	// already fail verification, so this is not correctness-critical
	if err := uc.sessionRepo.DeleteExpired(ctx); err != nil {
		uc.logger.Warnw("failed to sweep expired sessions", "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID, "username", existingUser.Username)

	return &LoginResult{
		Token: token,
		User:  existingUser.Profile(),
	}, nil
}
