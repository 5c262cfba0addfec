package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sungheeyun-bit/tracker/internal/dateutil"
)

func TestToUTCDate(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "LateEveningLocalTime",
			in:   time.Date(2024, 1, 5, 23, 45, 12, 0, lisbon),
			want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "AlreadyUTCMidnight",
			in:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "NegativeOffsetKeepsCalendarDay",
			in:   time.Date(2024, 3, 10, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutil.ToUTCDate(tt.in))
		})
	}
}

func TestToUTCDate_Idempotent(t *testing.T) {
	in := time.Date(2024, 7, 19, 18, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))

	once := dateutil.ToUTCDate(in)
	twice := dateutil.ToUTCDate(once)

	assert.Equal(t, once, twice)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "January", year: 2024, month: time.January, want: 31},
		{name: "LeapFebruary", year: 2024, month: time.February, want: 29},
		{name: "NonLeapFebruary", year: 2023, month: time.February, want: 28},
		{name: "April", year: 2024, month: time.April, want: 30},
		{name: "December", year: 2024, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutil.DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 13, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	to := time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)

	gotFrom, gotTo := dateutil.NormalizeRange(from, to)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), gotTo)
}
