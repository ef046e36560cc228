package pricing_test

import (
	"testing"
	"time"

	"hotel/shared/model"
	"hotel/shared/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	day := func(s string) time.Time {
		d, err := model.ParseDate(s)
		require.NoError(t, err)

		return d.Time
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{
			name:     "two nights",
			checkIn:  day("2024-06-01"),
			checkOut: day("2024-06-03"),
			want:     2,
		},
		{
			name:     "month boundary",
			checkIn:  day("2024-01-30"),
			checkOut: day("2024-02-02"),
			want:     3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  day("2024-06-01"),
			checkOut: day("2024-06-01").Add(26 * time.Hour),
			want:     2,
		},
		{
			name:     "same day",
			checkIn:  day("2024-06-01"),
			checkOut: day("2024-06-01"),
			wantErr:  pricing.ErrInvalidStay,
		},
		{
			name:     "reversed",
			checkIn:  day("2024-06-03"),
			checkOut: day("2024-06-01"),
			wantErr:  pricing.ErrInvalidStay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Nights(tt.checkIn, tt.checkOut)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(470000), pricing.Total(2, 235000))
	assert.Equal(t, int64(0), pricing.Total(0, 235000))
	assert.Equal(t, int64(0), pricing.Total(3, -1))
}

func TestQuote(t *testing.T) {
	nights, total, err := pricing.Quote("2024-06-01", "2024-06-03", 235000)

	require.NoError(t, err)
	assert.Equal(t, 2, nights)
	assert.Equal(t, int64(470000), total)

	_, _, err = pricing.Quote("01/06/2024", "2024-06-03", 235000)
	assert.Error(t, err)

	_, _, err = pricing.Quote("2024-06-03", "2024-06-03", 235000)
	assert.ErrorIs(t, err, pricing.ErrInvalidStay)
}
