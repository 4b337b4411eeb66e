package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/middleware"
	"github.com/portfolio-backend/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, manager *uploads.Manager) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	messageService := services.NewMessageService(services.NewMailerFromEnv())

	// Public marketing site endpoints
	publicController := NewPublicController(manager, messageService)
	publicController.RegisterRoutes(router)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Dashboard - protected by AuthMiddleware
	router.GET("/dashboard", middleware.AuthMiddleware(), NewDashboardController().GetDashboard)

	// Admin CRUD endpoints - protected by AuthMiddleware
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware())
	{
		NewProjectController(manager).RegisterRoutes(adminGroup)
		NewExperienceController(manager).RegisterRoutes(adminGroup)
		NewSkillController().RegisterRoutes(adminGroup)
		NewCertificationController().RegisterRoutes(adminGroup)
		NewTestimonialController(manager).RegisterRoutes(adminGroup)
		NewMessageController(messageService).RegisterRoutes(adminGroup)
		NewSettingController(manager).RegisterRoutes(adminGroup)
	}
}
