package services

import (
	"errors"

	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/errs"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"github.com/portfolio-backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	uploads     *uploads.Manager
}

// NewProjectService creates a new project service instance
func NewProjectService(manager *uploads.Manager) *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		uploads:     manager,
	}
}

// ListProjects retrieves all projects for the admin panel, drafts included
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// GetProject retrieves a single project for the edit form
func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return project, errs.NewNotFound("project")
	}
	return project, err
}

// CreateProject validates the form, stores the uploaded files and persists
// the project. A storage failure aborts the whole operation; a database
// failure removes the files stored moments before.
func (s *ProjectService) CreateProject(req dto.ProjectRequest) (models.Project, error) {
	ve := errs.NewValidationError()

	tech, features, tools := s.parseLists(req, ve)
	s.checkSlug(req.Slug, 0, ve)

	if req.Image == nil {
		ve.Add("image", "this field is required")
	} else if err := uploads.ValidateImage(req.Image); err != nil {
		ve.Add("image", err.Error())
	}
	for _, fh := range req.Screenshots {
		if err := uploads.ValidateImage(fh); err != nil {
			ve.Add("screenshots", err.Error())
			break
		}
	}
	if ve.HasErrors() {
		return models.Project{}, ve
	}

	imageURL, err := s.uploads.StoreSingle(req.Image, uploads.FolderProjects)
	if err != nil {
		return models.Project{}, errs.NewStorageError("write", err)
	}
	screenshotURLs, err := s.uploads.StoreBatch(req.Screenshots, uploads.FolderGallery)
	if err != nil {
		s.uploads.DeleteIfExists(imageURL)
		return models.Project{}, errs.NewStorageError("write", err)
	}

	project := models.Project{
		Slug:            req.Slug,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           imageURL,
		Category:        req.Category,
		Year:            req.Year,
		Duration:        req.Duration,
		Client:          req.Client,
		Role:            req.Role,
		Challenges:      req.Challenges,
		Solution:        req.Solution,
		Tech:            datatypes.NewJSONSlice(tech),
		Features:        datatypes.NewJSONSlice(features),
		Tools:           datatypes.NewJSONSlice(tools),
		Screenshots:     datatypes.NewJSONSlice(screenshotURLs),
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		Impact:          req.Impact,
		Awards:          req.Awards,
		Featured:        req.Featured,
		Status:          models.ProjectStatus(req.Status),
	}

	created, err := s.projectRepo.Create(project)
	if err != nil {
		s.uploads.DeleteIfExists(imageURL)
		for _, url := range screenshotURLs {
			s.uploads.DeleteIfExists(url)
		}
		return models.Project{}, err
	}
	return created, nil
}

// UpdateProject applies the form to an existing project. File fields left
// empty keep their current value and their stored file. New files are stored
// before the row update; the superseded files are only removed after the row
// is safely written.
func (s *ProjectService) UpdateProject(id uint, req dto.ProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return project, errs.NewNotFound("project")
	}
	if err != nil {
		return project, err
	}

	ve := errs.NewValidationError()
	tech, features, tools := s.parseLists(req, ve)
	s.checkSlug(req.Slug, id, ve)

	if req.Image != nil {
		if err := uploads.ValidateImage(req.Image); err != nil {
			ve.Add("image", err.Error())
		}
	}
	for _, fh := range req.Screenshots {
		if err := uploads.ValidateImage(fh); err != nil {
			ve.Add("screenshots", err.Error())
			break
		}
	}
	if ve.HasErrors() {
		return models.Project{}, ve
	}

	oldImage := ""
	oldScreenshots := []string(nil)
	newFiles := []string(nil)

	if req.Image != nil {
		url, err := s.uploads.StoreSingle(req.Image, uploads.FolderProjects)
		if err != nil {
			return models.Project{}, errs.NewStorageError("write", err)
		}
		oldImage = project.Image
		project.Image = url
		newFiles = append(newFiles, url)
	}
	if len(req.Screenshots) > 0 {
		urls, err := s.uploads.StoreBatch(req.Screenshots, uploads.FolderGallery)
		if err != nil {
			for _, url := range newFiles {
				s.uploads.DeleteIfExists(url)
			}
			return models.Project{}, errs.NewStorageError("write", err)
		}
		oldScreenshots = project.Screenshots
		project.Screenshots = datatypes.NewJSONSlice(urls)
		newFiles = append(newFiles, urls...)
	}

	project.Slug = req.Slug
	project.Title = req.Title
	project.Description = req.Description
	project.LongDescription = req.LongDescription
	project.Category = req.Category
	project.Year = req.Year
	project.Duration = req.Duration
	project.Client = req.Client
	project.Role = req.Role
	project.Challenges = req.Challenges
	project.Solution = req.Solution
	project.Tech = datatypes.NewJSONSlice(tech)
	project.Features = datatypes.NewJSONSlice(features)
	project.Tools = datatypes.NewJSONSlice(tools)
	project.LiveURL = req.LiveURL
	project.GithubURL = req.GithubURL
	project.Impact = req.Impact
	project.Awards = req.Awards
	project.Featured = req.Featured
	project.Status = models.ProjectStatus(req.Status)

	if err := s.projectRepo.Update(project); err != nil {
		for _, url := range newFiles {
			s.uploads.DeleteIfExists(url)
		}
		return models.Project{}, err
	}

	s.uploads.DeleteIfExists(oldImage)
	for _, url := range oldScreenshots {
		s.uploads.DeleteIfExists(url)
	}
	return project, nil
}

// DeleteProject permanently removes the project row and every file it references
func (s *ProjectService) DeleteProject(id uint) error {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound("project")
	}
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}

	s.uploads.DeleteIfExists(project.Image)
	for _, url := range project.Screenshots {
		s.uploads.DeleteIfExists(url)
	}
	return nil
}

// GetProjectBySlug serves the public detail page and counts the view. The
// increment is a single atomic UPDATE, so concurrent views all land.
func (s *ProjectService) GetProjectBySlug(slug string) (models.Project, error) {
	project, err := s.projectRepo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return project, errs.NewNotFound("project")
	}
	if err != nil {
		return project, err
	}

	if err := s.projectRepo.IncrementViews(project.ID); err != nil {
		return project, err
	}
	project.ViewsCount++
	return project, nil
}

func (s *ProjectService) parseLists(req dto.ProjectRequest, ve *errs.ValidationError) (tech, features, tools []string) {
	tech = utils.ParseCommaList(req.Tech)
	if len(tech) == 0 {
		ve.Add("tech", "this field is required")
	}
	features = utils.ParseLineList(req.Features)
	if len(features) == 0 {
		ve.Add("features", "this field is required")
	}
	tools = utils.ParseCommaList(req.Tools)
	return tech, features, tools
}

func (s *ProjectService) checkSlug(slug string, excludeID uint, ve *errs.ValidationError) {
	exists, err := s.projectRepo.ExistsBySlug(slug, excludeID)
	if err != nil {
		ve.Add("slug", "could not verify slug uniqueness")
		return
	}
	if exists {
		ve.Add("slug", "this slug is already taken")
	}
}
