package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction (income or expense).
// Direction is carried entirely by the type; amounts are always positive.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

var (
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidAmount   = errors.New("amount must be a positive integer")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("type must be income or expense")
	ErrMissingCategory = errors.New("category is required")
)

// Transaction represents a single financial event owned by a user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      int64 // whole currency units, always > 0
	Description string
	Date        time.Time // UTC midnight calendar day
	Type        Type
	Category    string
	// CategoryIcon is a snapshot of the category's icon taken at write time,
	// so deleting the category never breaks existing rows.
	CategoryIcon string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
