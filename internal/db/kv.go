package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

// Preference keys. The set mirrors the client's storage namespace so the PWA
// can sync without translation.
const (
	keyDarkMode                = "darkMode"
	keyNotificationPreferences = "notificationPreferences"
	keyFontSettings            = "fontSettings"
	keyLastRead                = "lastRead"
	keyBookmarks               = "quranBookmarks"
	keySelectedCity            = "selectedCity"
	keyLandingPageSeen         = "landingPageSeen"
)

// Every entry carries an explicit schema version so a shape change can be
// detected instead of silently corrupting reads. A version mismatch is
// treated the same as a malformed value: logged, then read as absent.
const (
	versionDarkMode        = 1
	versionNotifications   = 1
	versionFontSettings    = 1
	versionLastRead        = 1
	versionBookmarks       = 1
	versionSelectedCity    = 1
	versionLandingPageSeen = 1
)

// getValue loads one preference row. found is false when the row is missing.
func (s *pgStore) getValue(userID int, key string, wantVersion int, out any) (found bool, err error) {
	var row struct {
		SchemaVersion int    `db:"schema_version"`
		Value         []byte `db:"value"`
	}
	query := `
	SELECT schema_version, value
	FROM preferences
	WHERE user_id = $1 AND key = $2;
	`
	if err := s.db.Get(&row, query, userID, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("reading preference %s: %w", key, err)
	}

	if row.SchemaVersion != wantVersion {
		log.Warn().Str("key", key).Int("user", userID).
			Int("stored", row.SchemaVersion).Int("want", wantVersion).
			Msg("preference schema version mismatch, treating as absent")
		return false, nil
	}
	if err := json.Unmarshal(row.Value, out); err != nil {
		log.Warn().Err(err).Str("key", key).Int("user", userID).
			Msg("malformed stored preference, treating as absent")
		return false, nil
	}
	return true, nil
}

// setValue upserts one preference row. Last write wins; concurrent writers
// from multiple devices are not serialized beyond the single statement.
func (s *pgStore) setValue(userID int, key string, version int, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding preference %s: %w", key, err)
	}
	query := `
	INSERT INTO preferences (user_id, key, schema_version, value, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (user_id, key)
	DO UPDATE SET schema_version = $3, value = $4, updated_at = now();
	`
	if _, err := s.db.Exec(query, userID, key, version, raw); err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// NotificationPreferences returns the account's alert settings, materializing
// defaults when nothing usable is stored.
func (s *pgStore) NotificationPreferences(userID int) (model.NotificationPreferences, error) {
	var prefs model.NotificationPreferences
	found, err := s.getValue(userID, keyNotificationPreferences, versionNotifications, &prefs)
	if err != nil {
		return model.DefaultNotificationPreferences(), err
	}
	if !found || prefs.Prayers == nil {
		return model.DefaultNotificationPreferences(), nil
	}
	return prefs, nil
}

func (s *pgStore) SaveNotificationPreferences(userID int, prefs model.NotificationPreferences) error {
	return s.setValue(userID, keyNotificationPreferences, versionNotifications, prefs)
}

// FontSettings returns the account's reader settings, defaulting when absent.
func (s *pgStore) FontSettings(userID int) (model.FontSettings, error) {
	var settings model.FontSettings
	found, err := s.getValue(userID, keyFontSettings, versionFontSettings, &settings)
	if err != nil {
		return model.DefaultFontSettings(), err
	}
	if !found || settings.QuranFontSize == "" {
		return model.DefaultFontSettings(), nil
	}
	return settings, nil
}

func (s *pgStore) SaveFontSettings(userID int, settings model.FontSettings) error {
	return s.setValue(userID, keyFontSettings, versionFontSettings, settings)
}

func (s *pgStore) DarkMode(userID int) (bool, error) {
	var enabled bool
	found, err := s.getValue(userID, keyDarkMode, versionDarkMode, &enabled)
	if err != nil || !found {
		return false, err
	}
	return enabled, nil
}

func (s *pgStore) SaveDarkMode(userID int, enabled bool) error {
	return s.setValue(userID, keyDarkMode, versionDarkMode, enabled)
}

// LastRead returns nil when the account has no reading position yet.
func (s *pgStore) LastRead(userID int) (*model.LastRead, error) {
	var lastRead model.LastRead
	found, err := s.getValue(userID, keyLastRead, versionLastRead, &lastRead)
	if err != nil || !found {
		return nil, err
	}
	return &lastRead, nil
}

func (s *pgStore) SaveLastRead(userID int, lastRead model.LastRead) error {
	return s.setValue(userID, keyLastRead, versionLastRead, lastRead)
}

// SelectedCity returns nil when no city has been chosen; callers surface a
// "select a city" prompt rather than an error.
func (s *pgStore) SelectedCity(userID int) (*model.SelectedCity, error) {
	var city model.SelectedCity
	found, err := s.getValue(userID, keySelectedCity, versionSelectedCity, &city)
	if err != nil || !found {
		return nil, err
	}
	if city.ID == "" {
		return nil, nil
	}
	return &city, nil
}

func (s *pgStore) SaveSelectedCity(userID int, city model.SelectedCity) error {
	return s.setValue(userID, keySelectedCity, versionSelectedCity, city)
}

func (s *pgStore) LandingPageSeen(userID int) (bool, error) {
	var seen bool
	found, err := s.getValue(userID, keyLandingPageSeen, versionLandingPageSeen, &seen)
	if err != nil || !found {
		return false, err
	}
	return seen, nil
}

func (s *pgStore) MarkLandingPageSeen(userID int) error {
	return s.setValue(userID, keyLandingPageSeen, versionLandingPageSeen, true)
}
