package model

import "time"

// NotificationPreferences controls which prayer alerts an account receives
// and how far ahead of the prayer time they fire.
type NotificationPreferences struct {
	Enabled       bool            `json:"enabled"`
	Prayers       map[string]bool `json:"prayers"`
	MinutesBefore int             `json:"minutesBefore"`
}

// DefaultNotificationPreferences materializes on first read: notifications
// off, every prayer opted in, ten minute lead.
func DefaultNotificationPreferences() NotificationPreferences {
	prayers := make(map[string]bool, len(PrayerNames))
	for _, name := range PrayerNames {
		prayers[name] = true
	}
	return NotificationPreferences{
		Enabled:       false,
		Prayers:       prayers,
		MinutesBefore: 10,
	}
}

// FontSettings holds the reader's display choices as enumerated tokens the
// client understands.
type FontSettings struct {
	QuranFontSize   string `json:"quranFontSize"`
	QuranFontFamily string `json:"quranFontFamily"`
}

// DefaultFontSettings matches the client's built-in defaults.
func DefaultFontSettings() FontSettings {
	return FontSettings{
		QuranFontSize:   "text-2xl",
		QuranFontFamily: "font-quran",
	}
}

// LastRead marks the reader's most recent position.
type LastRead struct {
	Surah     int       `json:"surah"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// Bookmark pins a single verse. Uniqueness is by (Surah, Verse) pair when
// toggling; the list itself is ordered and deletion from the bookmarks page
// is by position.
type Bookmark struct {
	Surah     int       `json:"surah"`
	SurahName string    `json:"surahName"`
	Verse     int       `json:"verse"`
	Timestamp time.Time `json:"timestamp"`
}
