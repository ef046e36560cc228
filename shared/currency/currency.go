// Package currency formats and parses Indonesian rupiah amounts.
//
// Amounts are whole rupiah held in int64. Formatting follows the id-ID
// convention: "Rp" prefix, "." thousands separator and no decimals.
package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Symbol = "Rp"

	thousandsSeparator = "."
)

var (
	ErrEmptyAmount = errors.New("empty amount")

	printer = message.NewPrinter(language.Indonesian)
)

// FormatIDR renders 470000 as "Rp 470.000".
func FormatIDR(amount int64) string {
	if amount < 0 {
		return "-" + Symbol + " " + printer.Sprintf("%d", -amount)
	}

	return Symbol + " " + printer.Sprintf("%d", amount)
}

// ParseIDR reads back a value produced by FormatIDR.
func ParseIDR(value string) (int64, error) {
	value = strings.TrimSpace(value)

	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")
	value = strings.TrimSpace(strings.TrimPrefix(value, Symbol))
	value = strings.ReplaceAll(value, thousandsSeparator, "")
	value = strings.ReplaceAll(value, " ", "")

	if value == "" {
		return 0, ErrEmptyAmount
	}

	amount, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rupiah amount: %w", err)
	}

	if negative {
		amount = -amount
	}

	return amount, nil
}
