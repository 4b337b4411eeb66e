package v1

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/services"
)

// fileSettingKeys enumerates the form fields that carry a file upload on the
// settings screen. Anything else in the form is a plain value.
var fileSettingKeys = []string{
	models.SettingProfilePhoto,
	models.SettingCVFile,
}

// SettingController handles the admin settings screen
type SettingController struct {
	settingService *services.SettingService
}

// NewSettingController creates a new setting controller
func NewSettingController(manager *uploads.Manager) *SettingController {
	return &SettingController{
		settingService: services.NewSettingService(manager),
	}
}

// RegisterRoutes registers settings routes
func (c *SettingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", c.GetSettings)
	router.POST("/settings", c.UpdateSettings)
}

// GetSettings retrieves the full settings map
func (c *SettingController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingService.GetSettings()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, settings)
}

// UpdateSettings applies the settings form: the account security block, the
// settings key/value map and the enumerated file-backed keys, all in one
// multipart request
func (c *SettingController) UpdateSettings(ctx *gin.Context) {
	request := dto.SettingsUpdateRequest{
		Email:           ctx.PostForm("email"),
		NewPassword:     ctx.PostForm("new_password"),
		ConfirmPassword: ctx.PostForm("confirm_password"),
		Settings:        ctx.PostFormMap("settings"),
		Files:           make(map[string]*multipart.FileHeader),
	}

	for _, key := range fileSettingKeys {
		if fh, err := ctx.FormFile(key); err == nil && fh != nil {
			request.Files[key] = fh
		}
	}

	userID := ctx.GetUint("userId")
	if err := c.settingService.UpdateSettings(userID, request); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "Settings updated successfully")
}
