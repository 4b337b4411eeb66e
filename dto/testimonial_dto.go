package dto

import "mime/multipart"

// TestimonialRequest carries the admin testimonial form
type TestimonialRequest struct {
	Name    string `form:"name" binding:"required"`
	Role    string `form:"role" binding:"required"`
	Company string `form:"company" binding:"required"`
	Content string `form:"content" binding:"required"`

	Image *multipart.FileHeader `form:"image"`
}
