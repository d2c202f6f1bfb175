package routes

import (
	"github.com/gin-gonic/gin"

	"clubcms/internal/interfaces/http/handlers"
	"clubcms/internal/interfaces/http/middleware"
)

// CalendarRouteConfig holds dependencies for calendar routes.
type CalendarRouteConfig struct {
	CalendarHandler *handlers.CalendarHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCalendarRoutes configures calendar routes. Reads are public; writes
// require an authenticated admin session.
func SetupCalendarRoutes(api *gin.RouterGroup, cfg *CalendarRouteConfig) {
	calendar := api.Group("/calendar")
	{
		calendar.GET("", cfg.CalendarHandler.List)
		calendar.GET("/:id", cfg.CalendarHandler.Get)

		admin := calendar.Group("", cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
		admin.POST("", cfg.CalendarHandler.Create)
		admin.PUT("/:id", cfg.CalendarHandler.Update)
		admin.DELETE("/:id", cfg.CalendarHandler.Delete)
	}
}
