package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/services"
)

// TestimonialController handles the admin testimonial CRUD endpoints
type TestimonialController struct {
	testimonialService *services.TestimonialService
}

// NewTestimonialController creates a new testimonial controller
func NewTestimonialController(manager *uploads.Manager) *TestimonialController {
	return &TestimonialController{
		testimonialService: services.NewTestimonialService(manager),
	}
}

// RegisterRoutes registers testimonial routes
func (c *TestimonialController) RegisterRoutes(router *gin.RouterGroup) {
	testimonials := router.Group("/testimonials")
	{
		testimonials.GET("", c.ListTestimonials)
		testimonials.POST("", c.CreateTestimonial)
		testimonials.GET("/:id", c.GetTestimonial)
		testimonials.PUT("/:id", c.UpdateTestimonial)
		testimonials.POST("/:id", c.UpdateTestimonial)
		testimonials.DELETE("/:id", c.DeleteTestimonial)
	}
}

// ListTestimonials retrieves all testimonials
func (c *TestimonialController) ListTestimonials(ctx *gin.Context) {
	testimonials, err := c.testimonialService.ListTestimonials()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, testimonials)
}

// GetTestimonial retrieves a single testimonial for the edit form
func (c *TestimonialController) GetTestimonial(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	testimonial, err := c.testimonialService.GetTestimonial(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, testimonial)
}

// CreateTestimonial creates a new testimonial from the multipart form
func (c *TestimonialController) CreateTestimonial(ctx *gin.Context) {
	var request dto.TestimonialRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	testimonial, err := c.testimonialService.CreateTestimonial(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, testimonial)
}

// UpdateTestimonial updates an existing testimonial from the multipart form
func (c *TestimonialController) UpdateTestimonial(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request dto.TestimonialRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	testimonial, err := c.testimonialService.UpdateTestimonial(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, testimonial)
}

// DeleteTestimonial removes a testimonial and its portrait file
func (c *TestimonialController) DeleteTestimonial(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.testimonialService.DeleteTestimonial(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Testimonial deleted successfully")
}
