// Package stats derives per-period and per-category income/expense rollups
// from the raw transaction ledger. Every operation is a pure read: the
// engine never mutates transactions, and absence of data yields zero-valued
// results rather than errors.
package stats

import (
	"errors"
	"time"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

var (
	ErrInvalidRange     = errors.New("range start is after range end")
	ErrInvalidTimeframe = errors.New("timeframe must be month or year")
)

// BalanceStats are the income and expense totals over a range. Balance is
// derived by callers as Income - Expense, never stored.
type BalanceStats struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// CategoryStat is the rollup for one (category, type) group. Ordering of
// groups is not guaranteed; consumers sort.
type CategoryStat struct {
	Category     string           `json:"category"`
	CategoryIcon string           `json:"categoryIcon"`
	Type         transaction.Type `json:"type"`
	Total        int64            `json:"totalAmount"`
}

// Timeframe selects the history bucket size: by day within a month, or by
// month within a year.
type Timeframe string

const (
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

func (t Timeframe) Valid() bool {
	return t == TimeframeMonth || t == TimeframeYear
}

// Period anchors a history query to a specific month or year.
type Period struct {
	Year  int
	Month time.Month
}

// HistoryPoint is one bucket of the time series. Day is zero for year
// timeframes.
type HistoryPoint struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Day     int        `json:"day,omitempty"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
}

// Percentage computes a category's share of its type total. When the total
// is zero the group stands in for the whole, resolving to 100 rather than a
// division by zero.
func Percentage(amount, typeTotal int64) float64 {
	if typeTotal == 0 {
		return 100
	}

	return float64(amount) * 100 / float64(typeTotal)
}
