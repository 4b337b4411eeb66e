package dto

import "mime/multipart"

// SettingsUpdateRequest is assembled from the settings form. Three blocks may
// arrive together: the account security triple, the settings key/value map,
// and uploaded files for the enumerated file-backed setting keys.
type SettingsUpdateRequest struct {
	Email           string
	NewPassword     string
	ConfirmPassword string
	Settings        map[string]string
	Files           map[string]*multipart.FileHeader
}

// HasAccountBlock reports whether the request carries account security changes
func (r *SettingsUpdateRequest) HasAccountBlock() bool {
	return r.Email != "" || r.NewPassword != ""
}
