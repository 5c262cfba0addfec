package settings_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
)

func TestService_Update(t *testing.T) {
	type testCase struct {
		name      string
		currency  string
		setupMock func(m *settings.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			currency: "EUR",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().UpsertSettings(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "InvalidCurrencyRejectedBeforeWrite",
			currency: "WAT",
			wantErr:  money.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := settings.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := settings.NewService(repo, money.NewCache())
			got, err := svc.Update(context.Background(), uuid.New(), tt.currency)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.currency, got.Currency)
		})
	}
}

func TestService_FormatterFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := settings.NewMockRepository(ctrl)
	svc := settings.NewService(repo, money.NewCache())

	repo.EXPECT().
		GetSettings(gomock.Any(), userID).
		Return(&settings.Settings{UserID: userID, Currency: "USD"}, nil)

	f, err := svc.FormatterFor(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "USD", f.Code())
}

func TestService_FormatterFor_MissingSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := settings.NewMockRepository(ctrl)
	svc := settings.NewService(repo, money.NewCache())

	repo.EXPECT().GetSettings(gomock.Any(), userID).Return(nil, settings.ErrNotFound)

	_, err := svc.FormatterFor(context.Background(), userID)
	assert.ErrorIs(t, err, settings.ErrNotFound)
}
