package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/user"
	"clubcms/internal/shared/logger"
)

type LogoutUseCase struct {
	sessionRepo  user.SessionRepository
	tokenService TokenService
	logger       logger.Interface
}

func NewLogoutUseCase(
	sessionRepo user.SessionRepository,
	tokenService TokenService,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute revokes the token by deleting its session ledger row. Revoking an
// already-revoked or unknown token is not an error.
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	if err := uc.sessionRepo.DeleteByTokenHash(ctx, uc.tokenService.Hash(token)); err != nil {
		uc.logger.Errorw("failed to revoke session", "error", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
