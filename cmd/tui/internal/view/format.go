package view

import (
	"context"
	"strconv"
	"time"

	"github.com/sungheeyun-bit/tracker/internal/money"
)

const dbTimeout = 5 * time.Second

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatAmount renders an amount in the given currency, falling back to the
// bare number when no formatter is available yet.
func FormatAmount(f *money.Formatter, amount int64) string {
	if f == nil {
		return strconv.FormatInt(amount, 10)
	}

	return f.Format(amount)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
