package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sungheeyun-bit/tracker/internal/category"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, icon, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.Type, c.Icon).Scan(&c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return category.ErrExists
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, userID uuid.UUID, name string, typ transaction.Type) (*category.Category, error) {
	query := `
		SELECT user_id, name, type, icon, created_at
		FROM categories
		WHERE user_id = $1 AND name = $2 AND type = $3
	`

	var c category.Category

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, userID, name, typ).
		Scan(&c.UserID, &c.Name, &typeStr, &c.Icon, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	c.Type = transaction.Type(typeStr)

	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID, typ *transaction.Type) ([]*category.Category, error) {
	query := `
		SELECT user_id, name, type, icon, created_at
		FROM categories
		WHERE user_id = $1
	`

	args := []any{userID}

	if typ != nil {
		query += " AND type = $2"

		args = append(args, *typ)
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		if err := rows.Scan(&c.UserID, &c.Name, &typeStr, &c.Icon, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Type = transaction.Type(typeStr)
		cats = append(cats, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}

// DeleteCategory removes the category row only. Transactions referencing it
// keep their snapshotted name and icon.
func (s *Store) DeleteCategory(ctx context.Context, userID uuid.UUID, name string, typ transaction.Type) error {
	query := `DELETE FROM categories WHERE user_id = $1 AND name = $2 AND type = $3`

	res, err := s.db.ExecContext(ctx, query, userID, name, typ)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}
