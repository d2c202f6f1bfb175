// Package http wires repositories, use cases, handlers and middleware into
// the Gin engine.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "clubcms/internal/application/auth/usecases"
	calendarusecases "clubcms/internal/application/calendar/usecases"
	contactusecases "clubcms/internal/application/contact/usecases"
	imageusecases "clubcms/internal/application/image/usecases"
	newsusecases "clubcms/internal/application/news/usecases"
	"clubcms/internal/infrastructure/auth"
	"clubcms/internal/infrastructure/config"
	"clubcms/internal/infrastructure/email"
	"clubcms/internal/infrastructure/repository"
	"clubcms/internal/infrastructure/storage"
	"clubcms/internal/infrastructure/thumbnail"
	"clubcms/internal/interfaces/http/handlers"
	"clubcms/internal/interfaces/http/middleware"
	"clubcms/internal/interfaces/http/routes"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/services/markdown"
)

// Router owns the Gin engine and all route dependencies.
type Router struct {
	engine          *gin.Engine
	authHandler     *handlers.AuthHandler
	imageHandler    *handlers.ImageHandler
	newsHandler     *handlers.NewsHandler
	calendarHandler *handlers.CalendarHandler
	contactHandler  *handlers.ContactHandler
	healthHandler   *handlers.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	generalLimit    gin.HandlerFunc
	authLimit       gin.HandlerFunc
	uploadRoot      string
	allowedOrigins  []string
	log             logger.Interface
}

// NewRouter creates an HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	imageRepo := repository.NewImageRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	eventRepo := repository.NewCalendarEventRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.TokenExpHours)

	store, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}
	thumbnailer := thumbnail.New(cfg.Upload.ThumbnailWidth, cfg.Upload.ThumbnailHeight)
	markdownSvc := markdown.NewService()
	emailService := email.NewSMTPEmailService(cfg.Email)

	loginUC := authusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, jwtService, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionRepo, jwtService, log)
	changePasswordUC := authusecases.NewChangePasswordUseCase(userRepo, sessionRepo, hasher, cfg.Auth.Password.MinLength, log)

	uploadUC := imageusecases.NewUploadImageUseCase(imageRepo, store, thumbnailer, cfg.Upload.MaxFileSize, log)
	uploadBatchUC := imageusecases.NewUploadImagesUseCase(uploadUC, log)
	listImagesUC := imageusecases.NewListImagesUseCase(imageRepo, log)
	getImageUC := imageusecases.NewGetImageUseCase(imageRepo, log)
	updateImageUC := imageusecases.NewUpdateImageUseCase(imageRepo, log)
	deleteImageUC := imageusecases.NewDeleteImageUseCase(imageRepo, store, log)

	createNewsUC := newsusecases.NewCreateNewsUseCase(newsRepo, markdownSvc, log)
	listNewsUC := newsusecases.NewListNewsUseCase(newsRepo, markdownSvc, log)
	getNewsUC := newsusecases.NewGetNewsUseCase(newsRepo, markdownSvc, log)
	updateNewsUC := newsusecases.NewUpdateNewsUseCase(newsRepo, markdownSvc, log)
	deleteNewsUC := newsusecases.NewDeleteNewsUseCase(newsRepo, log)

	createEventUC := calendarusecases.NewCreateEventUseCase(eventRepo, log)
	listEventsUC := calendarusecases.NewListEventsUseCase(eventRepo, log)
	getEventUC := calendarusecases.NewGetEventUseCase(eventRepo, log)
	updateEventUC := calendarusecases.NewUpdateEventUseCase(eventRepo, log)
	deleteEventUC := calendarusecases.NewDeleteEventUseCase(eventRepo, log)

	sendMessageUC := contactusecases.NewSendMessageUseCase(emailService, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo, log)

	generalLimit, authLimit := buildRateLimits(redisClient, cfg, log)

	return &Router{
		engine:          engine,
		authHandler:     handlers.NewAuthHandler(loginUC, logoutUC, changePasswordUC, log),
		imageHandler:    handlers.NewImageHandler(uploadUC, uploadBatchUC, listImagesUC, getImageUC, updateImageUC, deleteImageUC, log),
		newsHandler:     handlers.NewNewsHandler(createNewsUC, listNewsUC, getNewsUC, updateNewsUC, deleteNewsUC, log),
		calendarHandler: handlers.NewCalendarHandler(createEventUC, listEventsUC, getEventUC, updateEventUC, deleteEventUC, log),
		contactHandler:  handlers.NewContactHandler(sendMessageUC, log),
		healthHandler:   handlers.NewHealthHandler(db),
		authMiddleware:  authMiddleware,
		generalLimit:    generalLimit,
		authLimit:       authLimit,
		uploadRoot:      store.Root(),
		allowedOrigins:  cfg.Server.AllowedOrigins,
		log:             log,
	}, nil
}

// buildRateLimits returns the general and auth limiters. With rate limiting
// disabled or Redis absent both are pass-throughs.
func buildRateLimits(redisClient *redis.Client, cfg *config.Config, log logger.Interface) (gin.HandlerFunc, gin.HandlerFunc) {
	passthrough := func(c *gin.Context) { c.Next() }

	if !cfg.RateLimit.Enabled || redisClient == nil {
		log.Infow("rate limiting disabled")
		return passthrough, passthrough
	}

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	limiter := middleware.NewRateLimiter(redisClient, window)
	return limiter.Limit("general", cfg.RateLimit.GeneralLimit),
		limiter.Limit("auth", cfg.RateLimit.AuthLimit)
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/api/health", r.healthHandler.Check)

	// Uploaded originals and thumbnails are served as plain static files.
	r.engine.Static("/uploads", r.uploadRoot)

	api := r.engine.Group("/api")
	api.Use(r.generalLimit)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		AuthRateLimit:  r.authLimit,
	})
	routes.SetupNewsRoutes(api, &routes.NewsRouteConfig{
		NewsHandler:    r.newsHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCalendarRoutes(api, &routes.CalendarRouteConfig{
		CalendarHandler: r.calendarHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupImageRoutes(api, &routes.ImageRouteConfig{
		ImageHandler:   r.imageHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupContactRoutes(api, &routes.ContactRouteConfig{
		ContactHandler: r.contactHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
