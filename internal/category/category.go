// Package category manages the named groupings transactions are filed under.
//
// A category's identity is the composite (user, name, type): an income
// category "Salary" and an expense category "Salary" are distinct entities.
// There is no surrogate key, so renaming is delete + create.
package category

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

var (
	ErrNotFound = errors.New("category not found")
	ErrExists   = errors.New("category already exists")
)

// Category is a named, typed grouping of transactions.
type Category struct {
	UserID    uuid.UUID
	Name      string
	Type      transaction.Type
	Icon      string // display glyph, typically an emoji
	CreatedAt time.Time
}
