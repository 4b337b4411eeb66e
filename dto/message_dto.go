package dto

// ContactRequest is the public contact form submission
type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}
