package dto

import "mime/multipart"

// ProjectRequest carries the admin project form. List fields arrive as
// delimited text with a declared delimiter per field: tech and tools are
// comma-separated, features are one per line. The image is required on
// create and optional on update; screenshots replace the whole gallery
// whenever any are submitted.
type ProjectRequest struct {
	Title           string `form:"title" binding:"required"`
	Slug            string `form:"slug" binding:"required"`
	Description     string `form:"description" binding:"required"`
	LongDescription string `form:"long_description" binding:"required"`
	Category        string `form:"category" binding:"required"`
	Year            string `form:"year" binding:"required"`
	Duration        string `form:"duration" binding:"required"`
	Client          string `form:"client" binding:"required"`
	Role            string `form:"role" binding:"required"`
	Challenges      string `form:"challenges" binding:"required"`
	Solution        string `form:"solution" binding:"required"`
	Tech            string `form:"tech" binding:"required"`
	Features        string `form:"features" binding:"required"`
	Tools           string `form:"tools"`
	LiveURL         string `form:"live_url"`
	GithubURL       string `form:"github_url"`
	Impact          string `form:"impact"`
	Awards          string `form:"awards"`
	Featured        bool   `form:"featured"`
	Status          string `form:"status" binding:"required,oneof=published draft"`

	Image       *multipart.FileHeader   `form:"image"`
	Screenshots []*multipart.FileHeader `form:"screenshots"`
}
