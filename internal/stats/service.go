package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/dateutil"
)

// DayRollup is a sparse per-day sum as returned by the store; days without
// transactions are absent.
type DayRollup struct {
	Day     int
	Income  int64
	Expense int64
}

// MonthRollup is a sparse per-month sum as returned by the store.
type MonthRollup struct {
	Month   time.Month
	Income  int64
	Expense int64
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stats
type Repository interface {
	SumByType(ctx context.Context, userID uuid.UUID, from, to time.Time) (BalanceStats, error)
	SumByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategoryStat, error)
	SumByDay(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]DayRollup, error)
	SumByMonth(ctx context.Context, userID uuid.UUID, year int) ([]MonthRollup, error)
	Years(ctx context.Context, userID uuid.UUID) ([]int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Balance sums amounts over the inclusive [from, to] range, partitioned by
// type. An empty range yields zeros, never an error.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID, from, to time.Time) (BalanceStats, error) {
	from, to, err := checkRange(from, to)
	if err != nil {
		return BalanceStats{}, err
	}

	stats, err := s.repo.SumByType(ctx, userID, from, to)
	if err != nil {
		return BalanceStats{}, fmt.Errorf("summing by type: %w", err)
	}

	return stats, nil
}

// Categories groups matching transactions by (category, type) and sums their
// amounts. No ordering is imposed here; the presentation layer sorts.
func (s *Service) Categories(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategoryStat, error) {
	from, to, err := checkRange(from, to)
	if err != nil {
		return nil, err
	}

	groups, err := s.repo.SumByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("summing by category: %w", err)
	}

	return groups, nil
}

// History returns a dense, strictly ascending time series for the anchored
// month or year. The full bucket skeleton is generated first and the sparse
// rollups are overlaid onto it, so buckets with no transactions still appear
// with zero values and chart axes never have gaps.
func (s *Service) History(ctx context.Context, userID uuid.UUID, tf Timeframe, period Period) ([]HistoryPoint, error) {
	if !tf.Valid() {
		return nil, ErrInvalidTimeframe
	}

	if tf == TimeframeMonth {
		return s.monthHistory(ctx, userID, period)
	}

	return s.yearHistory(ctx, userID, period.Year)
}

func (s *Service) monthHistory(ctx context.Context, userID uuid.UUID, period Period) ([]HistoryPoint, error) {
	rollups, err := s.repo.SumByDay(ctx, userID, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("summing by day: %w", err)
	}

	byDay := make(map[int]DayRollup, len(rollups))
	for _, r := range rollups {
		byDay[r.Day] = r
	}

	days := dateutil.DaysInMonth(period.Year, period.Month)
	points := make([]HistoryPoint, 0, days)

	for day := 1; day <= days; day++ {
		p := HistoryPoint{Year: period.Year, Month: period.Month, Day: day}

		if r, ok := byDay[day]; ok {
			p.Income = r.Income
			p.Expense = r.Expense
		}

		points = append(points, p)
	}

	return points, nil
}

func (s *Service) yearHistory(ctx context.Context, userID uuid.UUID, year int) ([]HistoryPoint, error) {
	rollups, err := s.repo.SumByMonth(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("summing by month: %w", err)
	}

	byMonth := make(map[time.Month]MonthRollup, len(rollups))
	for _, r := range rollups {
		byMonth[r.Month] = r
	}

	points := make([]HistoryPoint, 0, 12)

	for month := time.January; month <= time.December; month++ {
		p := HistoryPoint{Year: year, Month: month}

		if r, ok := byMonth[month]; ok {
			p.Income = r.Income
			p.Expense = r.Expense
		}

		points = append(points, p)
	}

	return points, nil
}

// Periods lists the years the user has transactions in, ascending. An empty
// ledger yields the current year so the period selector always has an entry.
func (s *Service) Periods(ctx context.Context, userID uuid.UUID) ([]int, error) {
	years, err := s.repo.Years(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing years: %w", err)
	}

	if len(years) == 0 {
		return []int{time.Now().UTC().Year()}, nil
	}

	return years, nil
}

func checkRange(from, to time.Time) (time.Time, time.Time, error) {
	from, to = dateutil.NormalizeRange(from, to)
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	return from, to, nil
}
