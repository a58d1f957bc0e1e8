package packets

import "github.com/hymuslim/hymuslim-server/internal/model"

// SavePreferencesRequest replaces the account's notification preferences.
type SavePreferencesRequest struct {
	Preferences model.NotificationPreferences `json:"preferences" binding:"required"`
}

// SaveFontSettingsRequest replaces the account's reader settings.
type SaveFontSettingsRequest struct {
	Settings model.FontSettings `json:"settings" binding:"required"`
}

// SaveDarkModeRequest toggles the account's theme.
type SaveDarkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SaveLastReadRequest updates the reading position.
type SaveLastReadRequest struct {
	Surah int    `json:"surah" binding:"required,min=1,max=114"`
	Name  string `json:"name" binding:"required"`
}

// SelectCityRequest overwrites the account's city.
type SelectCityRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// PushAlertRequest delivers an arbitrary text alert to the account's devices.
type PushAlertRequest struct {
	Text string `json:"text" binding:"required"`
}

// ToggleBookmarkRequest adds or removes one verse bookmark.
type ToggleBookmarkRequest struct {
	Surah     int    `json:"surah" binding:"required,min=1,max=114"`
	SurahName string `json:"surahName" binding:"required"`
	Verse     int    `json:"verse" binding:"required,min=1"`
}
