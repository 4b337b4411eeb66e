package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/services"
)

// ExperienceController handles the admin experience CRUD endpoints
type ExperienceController struct {
	experienceService *services.ExperienceService
}

// NewExperienceController creates a new experience controller
func NewExperienceController(manager *uploads.Manager) *ExperienceController {
	return &ExperienceController{
		experienceService: services.NewExperienceService(manager),
	}
}

// RegisterRoutes registers experience routes
func (c *ExperienceController) RegisterRoutes(router *gin.RouterGroup) {
	experiences := router.Group("/experiences")
	{
		experiences.GET("", c.ListExperiences)
		experiences.POST("", c.CreateExperience)
		experiences.GET("/:id", c.GetExperience)
		experiences.PUT("/:id", c.UpdateExperience)
		experiences.POST("/:id", c.UpdateExperience)
		experiences.DELETE("/:id", c.DeleteExperience)
	}
}

// ListExperiences retrieves all experiences, newest first
func (c *ExperienceController) ListExperiences(ctx *gin.Context) {
	experiences, err := c.experienceService.ListExperiences()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, experiences)
}

// GetExperience retrieves a single experience for the edit form
func (c *ExperienceController) GetExperience(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	experience, err := c.experienceService.GetExperience(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, experience)
}

// CreateExperience creates a new experience from the multipart form
func (c *ExperienceController) CreateExperience(ctx *gin.Context) {
	var request dto.ExperienceRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	experience, err := c.experienceService.CreateExperience(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, experience)
}

// UpdateExperience updates an existing experience from the multipart form
func (c *ExperienceController) UpdateExperience(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request dto.ExperienceRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	experience, err := c.experienceService.UpdateExperience(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, experience)
}

// DeleteExperience removes an experience and its logo file
func (c *ExperienceController) DeleteExperience(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.experienceService.DeleteExperience(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Experience deleted successfully")
}
