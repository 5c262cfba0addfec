package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sungheeyun-bit/tracker/internal/export"
	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

func TestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	txRepo := transaction.NewMockRepository(ctrl)
	categories := transaction.NewMockCategoryLookup(ctrl)
	settingsRepo := settings.NewMockRepository(ctrl)

	settingsRepo.EXPECT().
		GetSettings(gomock.Any(), userID).
		Return(&settings.Settings{UserID: userID, Currency: "USD"}, nil)

	txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, gomock.Any()).
		Return([]*transaction.Transaction{
			{
				ID:          uuid.New(),
				Amount:      1250,
				Description: "rent",
				Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				Type:        transaction.TypeExpense,
				Category:    "Housing",
			},
			{
				ID:       uuid.New(),
				Amount:   3200,
				Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				Type:     transaction.TypeIncome,
				Category: "Salary",
			},
		}, nil)

	svc := export.NewService(
		transaction.NewService(txRepo, categories),
		settings.NewService(settingsRepo, money.NewCache()),
	)

	var buf bytes.Buffer

	err := svc.Export(context.Background(), userID, transaction.ListFilter{}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "date,type,category,amount,description\n")
	assert.Contains(t, out, "2024-03-01,expense,Housing,")
	assert.Contains(t, out, "rent")
	assert.Contains(t, out, "2024-03-05,income,Salary,")
}

func TestExportUnknownCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	settingsRepo := settings.NewMockRepository(ctrl)
	settingsRepo.EXPECT().
		GetSettings(gomock.Any(), userID).
		Return(&settings.Settings{UserID: userID, Currency: "XAU"}, nil)

	svc := export.NewService(
		transaction.NewService(transaction.NewMockRepository(ctrl), transaction.NewMockCategoryLookup(ctrl)),
		settings.NewService(settingsRepo, money.NewCache()),
	)

	err := svc.Export(context.Background(), userID, transaction.ListFilter{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}
