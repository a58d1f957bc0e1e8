// Package db owns all persistent state: sync accounts plus the typed,
// schema-versioned preference store that replaces the client's flat
// localStorage namespace.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

// Store is passed into API controllers and the scheduler instead of being
// reached ambiently, so tests can substitute a stub.
type Store interface {
	// accounts
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	ListUserIDs() ([]int, error)

	// preferences (defaults materialize on first read)
	NotificationPreferences(userID int) (model.NotificationPreferences, error)
	SaveNotificationPreferences(userID int, prefs model.NotificationPreferences) error
	FontSettings(userID int) (model.FontSettings, error)
	SaveFontSettings(userID int, settings model.FontSettings) error
	DarkMode(userID int) (bool, error)
	SaveDarkMode(userID int, enabled bool) error
	LastRead(userID int) (*model.LastRead, error)
	SaveLastRead(userID int, lastRead model.LastRead) error
	SelectedCity(userID int) (*model.SelectedCity, error)
	SaveSelectedCity(userID int, city model.SelectedCity) error
	LandingPageSeen(userID int) (bool, error)
	MarkLandingPageSeen(userID int) error

	// bookmarks
	Bookmarks(userID int) ([]model.Bookmark, error)
	ToggleBookmark(userID int, bookmark model.Bookmark) (added bool, err error)
	DeleteBookmarkAt(userID int, position int) error
}

type pgStore struct {
	db *sqlx.DB
}

var _ Store = (*pgStore)(nil)

// NewStore returns a Store backed by the package-level connection.
func NewStore() Store {
	return &pgStore{db: DB}
}
