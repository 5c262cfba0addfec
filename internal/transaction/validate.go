package transaction

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sungheeyun-bit/tracker/internal/dateutil"
)

// Number accepts either a JSON number or a numeric string, mirroring what
// the dashboard's form submits. The raw text is kept for ValidateCreate to
// coerce.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	*n = Number(s)

	return nil
}

// CreateInput is the raw, untrusted payload for creating a transaction.
type CreateInput struct {
	Amount      Number `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Type        Type   `json:"type"`
}

// CreateParams is a validated, coerced transaction ready for persistence.
type CreateParams struct {
	Amount      int64
	Description string
	Date        time.Time
	Category    string
	Type        Type
}

// ValidateCreate is the single gate in front of every write. It coerces the
// amount to a positive integer, parses the date into a UTC calendar day and
// checks the type enum. Category existence is checked at the write boundary,
// not here.
func ValidateCreate(in CreateInput) (CreateParams, error) {
	amount, err := coerceAmount(string(in.Amount))
	if err != nil {
		return CreateParams{}, err
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return CreateParams{}, err
	}

	if !in.Type.Valid() {
		return CreateParams{}, ErrInvalidType
	}

	if strings.TrimSpace(in.Category) == "" {
		return CreateParams{}, ErrMissingCategory
	}

	return CreateParams{
		Amount:      amount,
		Description: in.Description,
		Date:        dateutil.ToUTCDate(date),
		Category:    in.Category,
		Type:        in.Type,
	}, nil
}

// coerceAmount turns numeric input into a positive integer amount. Decimal
// notation is accepted only when it denotes a whole number ("42.0").
func coerceAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidAmount
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if v <= 0 {
			return 0, ErrInvalidAmount
		}

		return v, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f <= 0 || f > math.MaxInt64 {
		return 0, ErrInvalidAmount
	}

	return int64(f), nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Time{}, ErrInvalidDate
}
