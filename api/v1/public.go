package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/services"
)

// PublicController serves the marketing site's read surface and contact form
type PublicController struct {
	publicService  *services.PublicService
	projectService *services.ProjectService
	messageService *services.MessageService
}

// NewPublicController creates a new public controller
func NewPublicController(manager *uploads.Manager, messageService *services.MessageService) *PublicController {
	return &PublicController{
		publicService:  services.NewPublicService(),
		projectService: services.NewProjectService(manager),
		messageService: messageService,
	}
}

// RegisterRoutes registers the public routes
func (c *PublicController) RegisterRoutes(router *gin.RouterGroup) {
	public := router.Group("/public")
	{
		public.GET("/home", c.GetHome)
		public.GET("/resume", c.GetResume)
		public.GET("/projects/:slug", c.GetProject)
		public.POST("/contact", c.CreateMessage)
	}
}

// GetHome serves the homepage data bundle. Draft projects are excluded.
func (c *PublicController) GetHome(ctx *gin.Context) {
	home, err := c.publicService.GetHome()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, home)
}

// GetResume serves the resume page settings subset
func (c *PublicController) GetResume(ctx *gin.Context) {
	resume, err := c.publicService.GetResume()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, resume)
}

// GetProject serves a project detail page by slug and counts the view
func (c *PublicController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProjectBySlug(ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// CreateMessage stores a contact form submission
func (c *PublicController) CreateMessage(ctx *gin.Context) {
	var request dto.ContactRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	message, err := c.messageService.CreateMessage(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, message)
}
