package transaction_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

func TestValidateCreate(t *testing.T) {
	type testCase struct {
		name    string
		in      transaction.CreateInput
		want    transaction.CreateParams
		wantErr error
	}

	tests := []testCase{
		{
			name: "StringAmountCoerced",
			in: transaction.CreateInput{
				Amount:   "42",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			want: transaction.CreateParams{
				Amount:   42,
				Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
		},
		{
			name: "WholeDecimalAccepted",
			in: transaction.CreateInput{
				Amount:   "42.0",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			want: transaction.CreateParams{
				Amount:   42,
				Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
		},
		{
			name: "RFC3339DateNormalizedToUTCDay",
			in: transaction.CreateInput{
				Amount:   "100",
				Date:     "2024-03-10T22:15:00+09:00",
				Category: "Salary",
				Type:     transaction.TypeIncome,
			},
			want: transaction.CreateParams{
				Amount:   100,
				Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Category: "Salary",
				Type:     transaction.TypeIncome,
			},
		},
		{
			name: "NegativeAmount",
			in: transaction.CreateInput{
				Amount:   "-5",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "ZeroAmount",
			in: transaction.CreateInput{
				Amount:   "0",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "FractionalAmount",
			in: transaction.CreateInput{
				Amount:   "12.5",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NonNumericAmount",
			in: transaction.CreateInput{
				Amount:   "lots",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "UnparseableDate",
			in: transaction.CreateInput{
				Amount:   "10",
				Date:     "01/02/2024",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidDate,
		},
		{
			name: "MissingDate",
			in: transaction.CreateInput{
				Amount:   "10",
				Category: "Food",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidDate,
		},
		{
			name: "BadType",
			in: transaction.CreateInput{
				Amount:   "10",
				Date:     "2024-01-01",
				Category: "Food",
				Type:     "transfer",
			},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "BlankCategory",
			in: transaction.CreateInput{
				Amount:   "10",
				Date:     "2024-01-01",
				Category: "   ",
				Type:     transaction.TypeExpense,
			},
			wantErr: transaction.ErrMissingCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.ValidateCreate(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var in transaction.CreateInput

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 42}`), &in))
	assert.Equal(t, transaction.Number("42"), in.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "42"}`), &in))
	assert.Equal(t, transaction.Number("42"), in.Amount)
}
