package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/services"
)

// ProjectController handles the admin project CRUD endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(manager *uploads.Manager) *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(manager),
	}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.POST("", c.CreateProject)
		projects.GET("/:id", c.GetProject)
		projects.PUT("/:id", c.UpdateProject)
		// file-upload forms tunnel PUT through POST
		projects.POST("/:id", c.UpdateProject)
		projects.DELETE("/:id", c.DeleteProject)
	}
}

// ListProjects retrieves all projects for the admin panel, drafts included
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListProjects()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, projects)
}

// GetProject retrieves a single project for the edit form
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	project, err := c.projectService.GetProject(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// CreateProject creates a new project from the multipart form
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var request dto.ProjectRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	project, err := c.projectService.CreateProject(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, project)
}

// UpdateProject updates an existing project from the multipart form
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request dto.ProjectRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	project, err := c.projectService.UpdateProject(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// DeleteProject removes a project and its stored files
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Project deleted successfully")
}
