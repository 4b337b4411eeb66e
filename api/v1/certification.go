package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/services"
)

// CertificationController handles the admin certification CRUD endpoints
type CertificationController struct {
	certificationService *services.CertificationService
}

// NewCertificationController creates a new certification controller
func NewCertificationController() *CertificationController {
	return &CertificationController{
		certificationService: services.NewCertificationService(),
	}
}

// RegisterRoutes registers certification routes
func (c *CertificationController) RegisterRoutes(router *gin.RouterGroup) {
	certifications := router.Group("/certifications")
	{
		certifications.GET("", c.ListCertifications)
		certifications.POST("", c.CreateCertification)
		certifications.GET("/:id", c.GetCertification)
		certifications.PUT("/:id", c.UpdateCertification)
		certifications.POST("/:id", c.UpdateCertification)
		certifications.DELETE("/:id", c.DeleteCertification)
	}
}

// ListCertifications retrieves all certifications
func (c *CertificationController) ListCertifications(ctx *gin.Context) {
	certifications, err := c.certificationService.ListCertifications()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, certifications)
}

// GetCertification retrieves a single certification for the edit form
func (c *CertificationController) GetCertification(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	certification, err := c.certificationService.GetCertification(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, certification)
}

// CreateCertification creates a new certification
func (c *CertificationController) CreateCertification(ctx *gin.Context) {
	var request dto.CertificationRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	certification, err := c.certificationService.CreateCertification(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, certification)
}

// UpdateCertification updates an existing certification
func (c *CertificationController) UpdateCertification(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request dto.CertificationRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	certification, err := c.certificationService.UpdateCertification(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, certification)
}

// DeleteCertification removes a certification
func (c *CertificationController) DeleteCertification(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.certificationService.DeleteCertification(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Certification deleted successfully")
}
