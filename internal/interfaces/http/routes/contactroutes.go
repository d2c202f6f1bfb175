package routes

import (
	"github.com/gin-gonic/gin"

	"clubcms/internal/interfaces/http/handlers"
)

// ContactRouteConfig holds dependencies for the contact form route.
type ContactRouteConfig struct {
	ContactHandler *handlers.ContactHandler
}

// SetupContactRoutes configures the public contact form route.
func SetupContactRoutes(api *gin.RouterGroup, cfg *ContactRouteConfig) {
	api.POST("/contact", cfg.ContactHandler.Send)
}
