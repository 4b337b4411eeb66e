package dto

// SkillRequest carries the admin skill form. Items are comma-separated.
type SkillRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Icon        string `form:"icon" binding:"required"`
	Items       string `form:"items" binding:"required"`
}

// CertificationRequest carries the admin certification form
type CertificationRequest struct {
	Name   string `form:"name" binding:"required"`
	Org    string `form:"org" binding:"required"`
	Period string `form:"period" binding:"required"`
	Score  string `form:"score" binding:"required"`
}
