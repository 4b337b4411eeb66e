package models

import "time"

// Recognized setting keys. The settings table accepts arbitrary keys; these
// are the ones the application itself reads or writes.
const (
	SettingSiteName     = "site_name"
	SettingSiteTitle    = "site_title"
	SettingAbout        = "about"
	SettingEmail        = "email"
	SettingLocation     = "location"
	SettingGithub       = "github"
	SettingLinkedin     = "linkedin"
	SettingTwitter      = "twitter"
	SettingPrimaryColor = "primary_color"
	SettingProfilePhoto = "profile_photo"
	SettingCVFile       = "cv_file"
)

// Setting represents a single key/value configuration row
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
