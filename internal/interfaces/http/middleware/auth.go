package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clubcms/internal/domain/user"
	"clubcms/internal/infrastructure/auth"
	"clubcms/internal/shared/constants"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/utils"
)

// AuthMiddleware guards routes behind a two-step check: the JWT signature
// and expiry must verify, and the matching session row must still exist.
// A structurally valid token whose session has been deleted is rejected.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, sessionRepo user.SessionRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewMissingTokenError())
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponseWithError(c, errors.NewMissingTokenError())
			c.Abort()
			return
		}
		token := parts[1]

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("token verification failed", "error", err, "ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
			c.Abort()
			return
		}

		// The signature alone is not enough: logout and password changes
		// revoke by deleting the session row keyed on the token digest.
		if _, err := m.sessionRepo.GetByTokenHash(c.Request.Context(), m.jwtService.Hash(token)); err != nil {
			if errors.IsNotFoundError(err) {
				utils.ErrorResponseWithError(c, errors.NewTokenRevokedError())
			} else {
				// a store failure says nothing about the token itself
				m.logger.Errorw("failed to look up session", "error", err)
				utils.ErrorResponseWithError(c, errors.NewInternalError("Authentication check failed"))
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Set(constants.ContextKeyToken, token)

		c.Next()
	}
}

// RequireAdmin assumes RequireAuth already ran and checks the role claim.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleAdmin {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
