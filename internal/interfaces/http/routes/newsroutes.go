package routes

import (
	"github.com/gin-gonic/gin"

	"clubcms/internal/interfaces/http/handlers"
	"clubcms/internal/interfaces/http/middleware"
)

// NewsRouteConfig holds dependencies for news routes.
type NewsRouteConfig struct {
	NewsHandler    *handlers.NewsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupNewsRoutes configures news routes. Reads are public; writes require
// an authenticated admin session.
func SetupNewsRoutes(api *gin.RouterGroup, cfg *NewsRouteConfig) {
	news := api.Group("/news")
	{
		news.GET("", cfg.NewsHandler.List)
		news.GET("/:id", cfg.NewsHandler.Get)

		admin := news.Group("", cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
		admin.POST("", cfg.NewsHandler.Create)
		admin.PUT("/:id", cfg.NewsHandler.Update)
		admin.DELETE("/:id", cfg.NewsHandler.Delete)
	}
}
