package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

var errCategoryMissing = errors.New("category not found")

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		in        transaction.CreateInput
		setupMock func(repo *transaction.MockRepository, cats *transaction.MockCategoryLookup)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			in: transaction.CreateInput{
				Amount:      "1000",
				Description: "Groceries",
				Date:        "2024-01-05",
				Category:    "Food",
				Type:        transaction.TypeExpense,
			},
			setupMock: func(repo *transaction.MockRepository, cats *transaction.MockCategoryLookup) {
				cats.EXPECT().
					Icon(gomock.Any(), userID, "Food", transaction.TypeExpense).
					Return("🍔", nil)
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ValidationFailureSkipsLookupAndWrite",
			in: transaction.CreateInput{
				Amount:   "-5",
				Date:     "2024-01-05",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "UnknownCategory",
			in: transaction.CreateInput{
				Amount:   "1000",
				Date:     "2024-01-05",
				Category: "Ghost",
				Type:     transaction.TypeExpense,
			},
			setupMock: func(repo *transaction.MockRepository, cats *transaction.MockCategoryLookup) {
				cats.EXPECT().
					Icon(gomock.Any(), userID, "Ghost", transaction.TypeExpense).
					Return("", errCategoryMissing)
			},
			wantErr: errCategoryMissing,
		},
		{
			name: "RepoError",
			in: transaction.CreateInput{
				Amount:   "10",
				Date:     "2024-01-05",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			setupMock: func(repo *transaction.MockRepository, cats *transaction.MockCategoryLookup) {
				cats.EXPECT().
					Icon(gomock.Any(), userID, "Food", transaction.TypeExpense).
					Return("🍔", nil)
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			cats := transaction.NewMockCategoryLookup(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, cats)
			}

			svc := transaction.NewService(repo, cats)
			got, err := svc.Create(context.Background(), userID, tt.in)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, got.UserID)
			assert.Equal(t, "🍔", got.CategoryIcon)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Create_SnapshotsIcon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	cats := transaction.NewMockCategoryLookup(ctrl)
	svc := transaction.NewService(repo, cats)

	cats.EXPECT().
		Icon(gomock.Any(), userID, "Salary", transaction.TypeIncome).
		Return("💰", nil)

	var persisted *transaction.Transaction

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			persisted = tx
			return nil
		})

	_, err := svc.Create(context.Background(), userID, transaction.CreateInput{
		Amount:   "500",
		Date:     "2024-02-01",
		Category: "Salary",
		Type:     transaction.TypeIncome,
	})
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "💰", persisted.CategoryIcon)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), persisted.Date)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	cats := transaction.NewMockCategoryLookup(ctrl)
	svc := transaction.NewService(repo, cats)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{Amount: 100, Type: transaction.TypeExpense, Category: "Food", Date: date},
		{Amount: 200, Type: transaction.TypeExpense, Category: "Food", Date: date},
		{Amount: 900, Type: transaction.TypeIncome, Category: "Salary", Date: date},
	}

	// Icon resolved once per distinct (category, type).
	cats.EXPECT().
		Icon(gomock.Any(), userID, "Food", transaction.TypeExpense).
		Return("🍔", nil).
		Times(1)
	cats.EXPECT().
		Icon(gomock.Any(), userID, "Salary", transaction.TypeIncome).
		Return("💰", nil).
		Times(1)
	repo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		Return(nil)

	txs, err := svc.CreateBatch(context.Background(), userID, params)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "🍔", txs[0].CategoryIcon)
	assert.Equal(t, "💰", txs[2].CategoryIcon)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl), transaction.NewMockCategoryLookup(ctrl))

	txs, err := svc.CreateBatch(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestService_List_NormalizesRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, transaction.NewMockCategoryLookup(ctrl))

	from := time.Date(2024, 1, 1, 15, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	to := time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListTransactions(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.From)
			assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *filter.To)
			return nil, nil
		})

	_, err := svc.List(context.Background(), userID, transaction.ListFilter{From: &from, To: &to})
	require.NoError(t, err)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	cats := transaction.NewMockCategoryLookup(ctrl)
	svc := transaction.NewService(repo, cats)

	tx := &transaction.Transaction{
		ID:       uuid.New(),
		UserID:   userID,
		Amount:   50,
		Date:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Type:     transaction.TypeExpense,
		Category: "Transport",
	}

	cats.EXPECT().
		Icon(gomock.Any(), userID, "Transport", transaction.TypeExpense).
		Return("🚌", nil)
	repo.EXPECT().UpdateTransaction(gomock.Any(), tx).Return(nil)

	require.NoError(t, svc.Update(context.Background(), tx))
	assert.Equal(t, "🚌", tx.CategoryIcon)
}

func TestService_Update_RejectsInvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl), transaction.NewMockCategoryLookup(ctrl))

	err := svc.Update(context.Background(), &transaction.Transaction{
		Amount: 0,
		Type:   transaction.TypeExpense,
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
}
