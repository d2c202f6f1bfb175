package routes

import (
	"github.com/gin-gonic/gin"

	"clubcms/internal/interfaces/http/handlers"
	"clubcms/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	AuthRateLimit  gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes. The stricter auth
// limiter covers the whole group; change-password in particular accepts
// current-password guesses and must not run under the general limit.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth", cfg.AuthRateLimit)
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/verify", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Verify)
		auth.POST("/change-password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
	}
}
