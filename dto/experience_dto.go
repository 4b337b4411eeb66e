package dto

import "mime/multipart"

// ExperienceRequest carries the admin experience form. Achievements arrive
// one per line; the company logo is always optional.
type ExperienceRequest struct {
	Company      string `form:"company" binding:"required"`
	Role         string `form:"role" binding:"required"`
	Period       string `form:"period" binding:"required"`
	Desc         string `form:"desc" binding:"required"`
	Achievements string `form:"achievements" binding:"required"`

	CompanyLogo *multipart.FileHeader `form:"company_logo"`
}
