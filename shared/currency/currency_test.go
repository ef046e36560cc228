package currency_test

import (
	"hotel/shared/currency"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "Rp 0"},
		{name: "below a thousand", amount: 950, want: "Rp 950"},
		{name: "two night stay", amount: 470000, want: "Rp 470.000"},
		{name: "millions", amount: 12500000, want: "Rp 12.500.000"},
		{name: "negative", amount: -235000, want: "-Rp 235.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.FormatIDR(tt.amount))
		})
	}
}

func TestParseIDR(t *testing.T) {
	for _, amount := range []int64{0, 1, 999, 235000, 470000, 1250000000, -75000} {
		parsed, err := currency.ParseIDR(currency.FormatIDR(amount))

		require.NoError(t, err)
		assert.Equal(t, amount, parsed)
	}
}

func TestParseIDR_Invalid(t *testing.T) {
	_, err := currency.ParseIDR("Rp ")
	assert.ErrorIs(t, err, currency.ErrEmptyAmount)

	_, err = currency.ParseIDR("Rp abc")
	assert.Error(t, err)
}
