package routes

import (
	"github.com/gin-gonic/gin"

	"clubcms/internal/interfaces/http/handlers"
	"clubcms/internal/interfaces/http/middleware"
)

// ImageRouteConfig holds dependencies for image routes.
type ImageRouteConfig struct {
	ImageHandler   *handlers.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupImageRoutes configures image routes. The whole management surface
// requires a session; image files themselves are served from /uploads.
func SetupImageRoutes(api *gin.RouterGroup, cfg *ImageRouteConfig) {
	images := api.Group("/images", cfg.AuthMiddleware.RequireAuth())
	{
		images.GET("", cfg.ImageHandler.List)
		images.GET("/:id", cfg.ImageHandler.Get)
		images.POST("/upload", cfg.ImageHandler.Upload)
		images.POST("/upload-multiple", cfg.ImageHandler.UploadMultiple)
		images.PUT("/:id", cfg.ImageHandler.Update)
		images.DELETE("/:id", cfg.ImageHandler.Delete)
	}
}
