package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

// CreateUser inserts a new account and returns its ID.
func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	query := `
	INSERT INTO users (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, email, hashedPassword, name).Scan(&newID)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	return newID, nil
}

// GetUserByEmail fetches an account by email. Returns sql.ErrNoRows if not found.
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM users
	WHERE email = $1;
	`
	err := s.db.Get(&u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

// GetUserByID fetches an account by ID. Returns sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	err := s.db.Get(&u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// ListUserIDs returns every account ID. The alert re-arm loop walks this and
// filters by each account's own preferences.
func (s *pgStore) ListUserIDs() ([]int, error) {
	var ids []int
	if err := s.db.Select(&ids, `SELECT id FROM users ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("failed to list user ids")
		return nil, err
	}
	return ids, nil
}
