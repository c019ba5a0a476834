package router

import (
	"net/http"

	"mindconnect/config"
	"mindconnect/internal/auth"
	"mindconnect/internal/domain"
	"mindconnect/internal/handler"
	"mindconnect/internal/middleware"
	"mindconnect/internal/repository"
	"mindconnect/internal/service"
	"mindconnect/pkg/cloudinary"
	"mindconnect/pkg/completion"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto a gin engine. cloud
// and provider may be nil: uploads are then disabled and the chatbot answers
// from its fallback table.
func Setup(
	cfg *config.Config,
	db *gorm.DB,
	cloud cloudinary.Client,
	provider completion.Provider,
	limiter *middleware.InMemoryRateLimiter,
) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics := middleware.NewMetrics("mindconnect")

	r := gin.New()
	if !cfg.Server.IsProduction() {
		r.Use(gin.Logger())
	}
	r.Use(middleware.Recovery())
	r.Use(metrics.Middleware())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewNGOProfileRepository(db)
	eventRepo := repository.NewEventRepository(db)
	chatRepo := repository.NewChatRecordRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	profileSvc := service.NewNGOProfileService(profileRepo, userRepo)
	eventSvc := service.NewEventService(eventRepo, profileRepo)
	historySvc := service.NewChatHistoryService(chatRepo)
	chatSvc := service.NewChatService(provider, historySvc)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo)
	authSvc := service.NewAuthService(userRepo, auth.BcryptVerifier{})

	// Handlers
	profileHandler := handler.NewNGOProfileHandler(profileSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	historyHandler := handler.NewChatHistoryHandler(historySvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(cloud)
	healthHandler := handler.NewHealthHandler(db)

	r.GET("/healthz", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(limiter))
	{
		profiles := api.Group("/ngo-profiles")
		profiles.GET("", profileHandler.List)
		profiles.POST("", profileHandler.Create)
		profiles.PUT("", profileHandler.Update)
		profiles.DELETE("", profileHandler.Delete)

		events := api.Group("/events")
		events.GET("", eventHandler.List)
		events.POST("", eventHandler.Create)
		events.PUT("", eventHandler.Update)
		events.DELETE("", eventHandler.Delete)

		history := api.Group("/chat-history")
		history.GET("", historyHandler.List)
		history.POST("", historyHandler.Create)
		history.DELETE("", historyHandler.Delete)

		api.POST("/chat", chatHandler.Reply)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/admin/analytics", analyticsHandler.Snapshot)
		api.POST("/uploads/image", uploadHandler.UploadImage)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "code": domain.CodeNotFound})
	})
	return r
}
