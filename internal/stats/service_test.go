package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sungheeyun-bit/tracker/internal/stats"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

func TestService_Balance(t *testing.T) {
	userID := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		from, to  time.Time
		setupMock func(m *stats.MockRepository)
		want      stats.BalanceStats
		wantErr   error
	}

	tests := []testCase{
		{
			name: "SumsPartitionedByType",
			from: from,
			to:   to,
			setupMock: func(m *stats.MockRepository) {
				m.EXPECT().
					SumByType(gomock.Any(), userID, from, to).
					Return(stats.BalanceStats{Income: 100, Expense: 30}, nil)
			},
			want: stats.BalanceStats{Income: 100, Expense: 30},
		},
		{
			name: "EmptyRangeYieldsZeros",
			from: from,
			to:   to,
			setupMock: func(m *stats.MockRepository) {
				m.EXPECT().
					SumByType(gomock.Any(), userID, from, to).
					Return(stats.BalanceStats{}, nil)
			},
			want: stats.BalanceStats{},
		},
		{
			name:    "FromAfterTo",
			from:    to,
			to:      from,
			wantErr: stats.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := stats.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := stats.NewService(repo)
			got, err := svc.Balance(context.Background(), userID, tt.from, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Balance_NormalizesBoundsBeforeQuerying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	from := time.Date(2024, 1, 1, 18, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	to := time.Date(2024, 1, 31, 4, 30, 0, 0, time.UTC)

	repo.EXPECT().
		SumByType(gomock.Any(), userID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)).
		Return(stats.BalanceStats{}, nil)

	_, err := svc.Balance(context.Background(), userID, from, to)
	require.NoError(t, err)
}

func TestService_Balance_Additivity(t *testing.T) {
	// Splitting [from, to] into adjacent sub-ranges must sum to the whole.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	ledger := []struct {
		date   time.Time
		amount int64
		typ    transaction.Type
	}{
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100, transaction.TypeIncome},
		{time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 30, transaction.TypeExpense},
		{time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 70, transaction.TypeIncome},
		{time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), 15, transaction.TypeExpense},
	}

	sumRange := func(from, to time.Time) stats.BalanceStats {
		var out stats.BalanceStats

		for _, e := range ledger {
			if e.date.Before(from) || e.date.After(to) {
				continue
			}

			if e.typ == transaction.TypeIncome {
				out.Income += e.amount
			} else {
				out.Expense += e.amount
			}
		}

		return out
	}

	repo.EXPECT().
		SumByType(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, from, to time.Time) (stats.BalanceStats, error) {
			return sumRange(from, to), nil
		}).
		Times(3)

	full, err := svc.Balance(context.Background(), userID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	left, err := svc.Balance(context.Background(), userID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	right, err := svc.Balance(context.Background(), userID,
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, full.Income, left.Income+right.Income)
	assert.Equal(t, full.Expense, left.Expense+right.Expense)
	assert.Equal(t, stats.BalanceStats{Income: 170, Expense: 45}, full)
}

func TestService_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	groups := []stats.CategoryStat{
		{Category: "Salary", CategoryIcon: "💰", Type: transaction.TypeIncome, Total: 100},
		{Category: "Food", CategoryIcon: "🍔", Type: transaction.TypeExpense, Total: 20},
		{Category: "Transport", CategoryIcon: "🚌", Type: transaction.TypeExpense, Total: 10},
	}

	repo.EXPECT().SumByCategory(gomock.Any(), userID, from, to).Return(groups, nil)
	repo.EXPECT().
		SumByType(gomock.Any(), userID, from, to).
		Return(stats.BalanceStats{Income: 100, Expense: 30}, nil)

	got, err := svc.Categories(context.Background(), userID, from, to)
	require.NoError(t, err)

	// Per-type totals reconcile with the balance stats over the same range.
	balance, err := svc.Balance(context.Background(), userID, from, to)
	require.NoError(t, err)

	var income, expense int64

	for _, g := range got {
		switch g.Type {
		case transaction.TypeIncome:
			income += g.Total
		case transaction.TypeExpense:
			expense += g.Total
		}
	}

	assert.Equal(t, balance.Income, income)
	assert.Equal(t, balance.Expense, expense)
}

func TestService_Categories_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := stats.NewService(stats.NewMockRepository(ctrl))

	_, err := svc.Categories(context.Background(), uuid.New(),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, stats.ErrInvalidRange)
}

func TestService_History_MonthView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	// Sparse rollups: only two days have data.
	repo.EXPECT().
		SumByDay(gomock.Any(), userID, 2024, time.February).
		Return([]stats.DayRollup{
			{Day: 5, Income: 100},
			{Day: 29, Expense: 30},
		}, nil)

	points, err := svc.History(context.Background(), userID, stats.TimeframeMonth, stats.Period{Year: 2024, Month: time.February})
	require.NoError(t, err)

	// 2024 is a leap year: dense series of exactly 29 entries.
	require.Len(t, points, 29)

	for i, p := range points {
		assert.Equal(t, i+1, p.Day, "days strictly ascending with no gaps")
		assert.Equal(t, 2024, p.Year)
		assert.Equal(t, time.February, p.Month)
		assert.GreaterOrEqual(t, p.Income, int64(0))
		assert.GreaterOrEqual(t, p.Expense, int64(0))
	}

	assert.Equal(t, int64(100), points[4].Income)
	assert.Equal(t, int64(30), points[28].Expense)
	assert.Equal(t, int64(0), points[0].Income)
	assert.Equal(t, int64(0), points[0].Expense)
}

func TestService_History_YearView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	repo.EXPECT().
		SumByMonth(gomock.Any(), userID, 2024).
		Return([]stats.MonthRollup{
			{Month: time.March, Income: 500, Expense: 200},
		}, nil)

	points, err := svc.History(context.Background(), userID, stats.TimeframeYear, stats.Period{Year: 2024})
	require.NoError(t, err)

	require.Len(t, points, 12)

	for i, p := range points {
		assert.Equal(t, time.Month(i+1), p.Month, "months strictly ascending")
		assert.Zero(t, p.Day)
	}

	assert.Equal(t, int64(500), points[2].Income)
	assert.Equal(t, int64(200), points[2].Expense)
	assert.Equal(t, int64(0), points[11].Income)
}

func TestService_History_EmptyLedgerStillDense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	repo.EXPECT().SumByDay(gomock.Any(), userID, 2023, time.April).Return(nil, nil)

	points, err := svc.History(context.Background(), userID, stats.TimeframeMonth, stats.Period{Year: 2023, Month: time.April})
	require.NoError(t, err)
	require.Len(t, points, 30)

	for _, p := range points {
		assert.Zero(t, p.Income)
		assert.Zero(t, p.Expense)
	}
}

func TestService_History_InvalidTimeframe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := stats.NewService(stats.NewMockRepository(ctrl))

	_, err := svc.History(context.Background(), uuid.New(), "week", stats.Period{Year: 2024})
	assert.ErrorIs(t, err, stats.ErrInvalidTimeframe)
}

func TestService_Periods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	repo.EXPECT().Years(gomock.Any(), userID).Return([]int{2022, 2023, 2024}, nil)

	years, err := svc.Periods(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []int{2022, 2023, 2024}, years)
}

func TestService_Periods_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := stats.NewMockRepository(ctrl)
	svc := stats.NewService(repo)

	repo.EXPECT().Years(gomock.Any(), userID).Return(nil, nil)

	years, err := svc.Periods(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []int{time.Now().UTC().Year()}, years)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		typeTotal int64
		want      float64
	}{
		{name: "HalfShare", amount: 50, typeTotal: 100, want: 50},
		{name: "FullShare", amount: 30, typeTotal: 30, want: 100},
		{name: "ZeroTotalDegenerateCase", amount: 0, typeTotal: 0, want: 100},
		{name: "SoleNonZeroGroupWithZeroTotal", amount: 40, typeTotal: 0, want: 100},
		{name: "SmallShare", amount: 1, typeTotal: 200, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, stats.Percentage(tt.amount, tt.typeTotal), 1e-9)
		})
	}
}
