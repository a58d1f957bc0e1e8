// Package stubs provides an in-memory db.Store for tests.
package stubs

import (
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/hymuslim/hymuslim-server/internal/db"
	"github.com/hymuslim/hymuslim-server/internal/model"
)

type userPrefs struct {
	notifications *model.NotificationPreferences
	fonts         *model.FontSettings
	darkMode      bool
	lastRead      *model.LastRead
	city          *model.SelectedCity
	landingSeen   bool
	bookmarks     []model.Bookmark
}

// Store is an in-memory db.Store with the same toggle and positional-delete
// semantics as the Postgres implementation.
type Store struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*model.User
	prefs  map[int]*userPrefs
}

var _ db.Store = (*Store)(nil)

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		users:  make(map[int]*model.User),
		prefs:  make(map[int]*userPrefs),
	}
}

func (s *Store) prefsFor(userID int) *userPrefs {
	p, ok := s.prefs[userID]
	if !ok {
		p = &userPrefs{}
		s.prefs[userID] = p
	}
	return p
}

func (s *Store) CreateUser(email, hashedPassword string, name *string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return 0, fmt.Errorf("email %s already exists", email)
		}
	}
	id := s.nextID
	s.nextID++
	s.users[id] = &model.User{ID: id, Email: email, HashedPassword: hashedPassword, Name: name}
	return id, nil
}

func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *Store) GetUserByID(id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (s *Store) ListUserIDs() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *Store) NotificationPreferences(userID int) (model.NotificationPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)
	if p.notifications == nil {
		return model.DefaultNotificationPreferences(), nil
	}
	return *p.notifications, nil
}

func (s *Store) SaveNotificationPreferences(userID int, prefs model.NotificationPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefsFor(userID).notifications = &prefs
	return nil
}

func (s *Store) FontSettings(userID int) (model.FontSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)
	if p.fonts == nil {
		return model.DefaultFontSettings(), nil
	}
	return *p.fonts, nil
}

func (s *Store) SaveFontSettings(userID int, settings model.FontSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefsFor(userID).fonts = &settings
	return nil
}

func (s *Store) DarkMode(userID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefsFor(userID).darkMode, nil
}

func (s *Store) SaveDarkMode(userID int, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefsFor(userID).darkMode = enabled
	return nil
}

func (s *Store) LastRead(userID int) (*model.LastRead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)
	if p.lastRead == nil {
		return nil, nil
	}
	copied := *p.lastRead
	return &copied, nil
}

func (s *Store) SaveLastRead(userID int, lastRead model.LastRead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefsFor(userID).lastRead = &lastRead
	return nil
}

func (s *Store) SelectedCity(userID int) (*model.SelectedCity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)
	if p.city == nil {
		return nil, nil
	}
	copied := *p.city
	return &copied, nil
}

func (s *Store) SaveSelectedCity(userID int, city model.SelectedCity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefsFor(userID).city = &city
	return nil
}

func (s *Store) LandingPageSeen(userID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefsFor(userID).landingSeen, nil
}

func (s *Store) MarkLandingPageSeen(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefsFor(userID).landingSeen = true
	return nil
}

func (s *Store) Bookmarks(userID int) ([]model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)
	out := make([]model.Bookmark, len(p.bookmarks))
	copy(out, p.bookmarks)
	return out, nil
}

func (s *Store) ToggleBookmark(userID int, bookmark model.Bookmark) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)

	for i, b := range p.bookmarks {
		if b.Surah == bookmark.Surah && b.Verse == bookmark.Verse {
			p.bookmarks = append(p.bookmarks[:i], p.bookmarks[i+1:]...)
			return false, nil
		}
	}
	p.bookmarks = append(p.bookmarks, bookmark)
	return true, nil
}

func (s *Store) DeleteBookmarkAt(userID int, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefsFor(userID)
	if position < 0 || position >= len(p.bookmarks) {
		return fmt.Errorf("bookmark position %d out of range [0,%d)", position, len(p.bookmarks))
	}
	p.bookmarks = append(p.bookmarks[:position], p.bookmarks[position+1:]...)
	return nil
}
