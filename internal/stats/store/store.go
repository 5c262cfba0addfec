package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/stats"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

// Store runs the rollup queries the aggregation engine consumes. Grouping
// and summing happen in SQL; the engine only densifies the results.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SumByType(ctx context.Context, userID uuid.UUID, from, to time.Time) (stats.BalanceStats, error) {
	query := `
		SELECT type, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY type
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return stats.BalanceStats{}, fmt.Errorf("summing by type: %w", err)
	}
	defer rows.Close()

	var result stats.BalanceStats

	for rows.Next() {
		var typeStr string

		var total int64

		if err := rows.Scan(&typeStr, &total); err != nil {
			return stats.BalanceStats{}, fmt.Errorf("scanning type sum: %w", err)
		}

		switch transaction.Type(typeStr) {
		case transaction.TypeIncome:
			result.Income = total
		case transaction.TypeExpense:
			result.Expense = total
		}
	}

	if err := rows.Err(); err != nil {
		return stats.BalanceStats{}, fmt.Errorf("iterating type sums: %w", err)
	}

	return result, nil
}

func (s *Store) SumByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]stats.CategoryStat, error) {
	query := `
		SELECT category, category_icon, type, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY category, category_icon, type
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("summing by category: %w", err)
	}
	defer rows.Close()

	var groups []stats.CategoryStat

	for rows.Next() {
		var g stats.CategoryStat

		var typeStr string

		if err := rows.Scan(&g.Category, &g.CategoryIcon, &typeStr, &g.Total); err != nil {
			return nil, fmt.Errorf("scanning category sum: %w", err)
		}

		g.Type = transaction.Type(typeStr)
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category sums: %w", err)
	}

	return groups, nil
}

func (s *Store) SumByDay(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]stats.DayRollup, error) {
	query := `
		SELECT EXTRACT(DAY FROM date)::int AS day,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1
		  AND date >= $2 AND date < $3
		GROUP BY day
		ORDER BY day ASC
	`

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("summing by day: %w", err)
	}
	defer rows.Close()

	var rollups []stats.DayRollup

	for rows.Next() {
		var r stats.DayRollup

		if err := rows.Scan(&r.Day, &r.Income, &r.Expense); err != nil {
			return nil, fmt.Errorf("scanning day sum: %w", err)
		}

		rollups = append(rollups, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day sums: %w", err)
	}

	return rollups, nil
}

func (s *Store) SumByMonth(ctx context.Context, userID uuid.UUID, year int) ([]stats.MonthRollup, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1
		  AND date >= $2 AND date < $3
		GROUP BY month
		ORDER BY month ASC
	`

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("summing by month: %w", err)
	}
	defer rows.Close()

	var rollups []stats.MonthRollup

	for rows.Next() {
		var month int

		var r stats.MonthRollup

		if err := rows.Scan(&month, &r.Income, &r.Expense); err != nil {
			return nil, fmt.Errorf("scanning month sum: %w", err)
		}

		r.Month = time.Month(month)
		rollups = append(rollups, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating month sums: %w", err)
	}

	return rollups, nil
}

func (s *Store) Years(ctx context.Context, userID uuid.UUID) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS year
		FROM transactions
		WHERE user_id = $1
		ORDER BY year ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing years: %w", err)
	}
	defer rows.Close()

	var years []int

	for rows.Next() {
		var y int

		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scanning year: %w", err)
		}

		years = append(years, y)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating years: %w", err)
	}

	return years, nil
}
