package money_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungheeyun-bit/tracker/internal/money"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "USD", code: "USD"},
		{name: "EUR", code: "EUR"},
		{name: "KRW", code: "KRW"},
		{name: "UnknownCode", code: "ZZZ", wantErr: true},
		{name: "ValidISOButUnsupported", code: "CHF", wantErr: true},
		{name: "Empty", code: "", wantErr: true},
		{name: "Lowercase", code: "usd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := money.New(tt.code)

			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidCurrency)
				assert.Nil(t, f)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.code, f.Code())
		})
	}
}

func TestFormatter_Format(t *testing.T) {
	f, err := money.New("USD")
	require.NoError(t, err)

	got := f.Format(1250)

	assert.True(t, strings.Contains(got, "1,250"), "expected grouped digits, got %q", got)
	assert.True(t, strings.Contains(got, "$"), "expected currency symbol, got %q", got)
}

func TestCache_FormatterFor(t *testing.T) {
	cache := money.NewCache()

	first, err := cache.FormatterFor("EUR")
	require.NoError(t, err)

	second, err := cache.FormatterFor("EUR")
	require.NoError(t, err)

	assert.Same(t, first, second)

	_, err = cache.FormatterFor("nope")
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}
