package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/services"
)

// SkillController handles the admin skill CRUD endpoints
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new skill controller
func NewSkillController() *SkillController {
	return &SkillController{
		skillService: services.NewSkillService(),
	}
}

// RegisterRoutes registers skill routes
func (c *SkillController) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", c.ListSkills)
		skills.POST("", c.CreateSkill)
		skills.GET("/:id", c.GetSkill)
		skills.PUT("/:id", c.UpdateSkill)
		skills.POST("/:id", c.UpdateSkill)
		skills.DELETE("/:id", c.DeleteSkill)
	}
}

// ListSkills retrieves all skills
func (c *SkillController) ListSkills(ctx *gin.Context) {
	skills, err := c.skillService.ListSkills()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, skills)
}

// GetSkill retrieves a single skill for the edit form
func (c *SkillController) GetSkill(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	skill, err := c.skillService.GetSkill(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, skill)
}

// CreateSkill creates a new skill
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	var request dto.SkillRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	skill, err := c.skillService.CreateSkill(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, skill)
}

// UpdateSkill updates an existing skill
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request dto.SkillRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	skill, err := c.skillService.UpdateSkill(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, skill)
}

// DeleteSkill removes a skill
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.skillService.DeleteSkill(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Skill deleted successfully")
}
