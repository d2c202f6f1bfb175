package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/user"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo          user.Repository
	sessionRepo       user.SessionRepository
	hasher            user.PasswordHasher
	minPasswordLength int
	logger            logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	minPasswordLength int,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:          userRepo,
		sessionRepo:       sessionRepo,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < uc.minPasswordLength {
		return errors.NewWeakPasswordError(uc.minPasswordLength)
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, existingUser.PasswordHash); err != nil {
		return errors.NewInvalidCredentialsError()
	}

	newHash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, cmd.UserID, newHash); err != nil {
		uc.logger.Errorw("failed to update password", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to update password: %w", err)
	}

	// A password change invalidates every outstanding grant, not just the
	// session used to authenticate the change
	if err := uc.sessionRepo.DeleteByUserID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to revoke sessions after password change", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	uc.logger.Infow("password changed, all sessions revoked", "user_id", cmd.UserID)
	return nil
}
