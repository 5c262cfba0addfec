// Package settings holds per-user account preferences. Today that is only
// the display currency picked during onboarding.
package settings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user settings not found")

type Settings struct {
	UserID    uuid.UUID
	Currency  string // ISO 4217 code, validated against the supported set
	CreatedAt time.Time
	UpdatedAt *time.Time
}
