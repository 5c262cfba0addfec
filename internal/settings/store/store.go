package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/settings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSettings(ctx context.Context, userID uuid.UUID) (*settings.Settings, error) {
	query := `
		SELECT user_id, currency, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var st settings.Settings

	err := s.db.QueryRowContext(ctx, query, userID).
		Scan(&st.UserID, &st.Currency, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settings.ErrNotFound
		}

		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return &st, nil
}

func (s *Store) UpsertSettings(ctx context.Context, st *settings.Settings) error {
	query := `
		INSERT INTO user_settings (user_id, currency, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET currency = EXCLUDED.currency, updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, st.UserID, st.Currency).
		Scan(&st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}

	return nil
}
