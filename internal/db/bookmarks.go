package db

import (
	"fmt"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

// Bookmarks returns the account's bookmark list in stored order. Absent or
// malformed data reads as an empty list.
func (s *pgStore) Bookmarks(userID int) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	found, err := s.getValue(userID, keyBookmarks, versionBookmarks, &bookmarks)
	if err != nil {
		return nil, err
	}
	if !found || bookmarks == nil {
		return []model.Bookmark{}, nil
	}
	return bookmarks, nil
}

// ToggleBookmark adds the bookmark if no entry with the same (surah, verse)
// pair exists, otherwise removes the existing entry. Reports whether the
// bookmark was added.
func (s *pgStore) ToggleBookmark(userID int, bookmark model.Bookmark) (bool, error) {
	bookmarks, err := s.Bookmarks(userID)
	if err != nil {
		return false, err
	}

	existing := -1
	for i, b := range bookmarks {
		if b.Surah == bookmark.Surah && b.Verse == bookmark.Verse {
			existing = i
			break
		}
	}

	added := existing < 0
	if added {
		bookmarks = append(bookmarks, bookmark)
	} else {
		bookmarks = append(bookmarks[:existing], bookmarks[existing+1:]...)
	}

	if err := s.setValue(userID, keyBookmarks, versionBookmarks, bookmarks); err != nil {
		return false, err
	}
	return added, nil
}

// DeleteBookmarkAt removes the bookmark at the given position. Deletion is
// positional, duplicate-agnostic: the bookmarks page deletes whatever row
// the reader pointed at.
func (s *pgStore) DeleteBookmarkAt(userID int, position int) error {
	bookmarks, err := s.Bookmarks(userID)
	if err != nil {
		return err
	}
	if position < 0 || position >= len(bookmarks) {
		return fmt.Errorf("bookmark position %d out of range [0,%d)", position, len(bookmarks))
	}

	bookmarks = append(bookmarks[:position], bookmarks[position+1:]...)
	return s.setValue(userID, keyBookmarks, versionBookmarks, bookmarks)
}
