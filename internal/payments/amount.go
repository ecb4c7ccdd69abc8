package payments

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

var amount2dp = regexp.MustCompile(`^\d+\.\d{2}$`)

var (
	ErrAmountFormat   = errors.New("amount must have exactly two decimal places, e.g. 150000.00")
	ErrAmountPositive = errors.New("amount must be greater than zero")
)

// ParseAmount2DP parses a SNAP amount value such as "150000.00".
func ParseAmount2DP(s string) (decimal.Decimal, error) {
	if !amount2dp.MatchString(s) {
		return decimal.Zero, ErrAmountFormat
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrAmountFormat
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrAmountPositive
	}
	return d, nil
}

// IsAmount2DP is the predicate behind the amount2dp validation tag.
func IsAmount2DP(s string) bool {
	_, err := ParseAmount2DP(s)
	return err == nil
}

// IntegerAmount drops any fraction: 1000.75 becomes "1000".
func IntegerAmount(d decimal.Decimal) string {
	return d.Truncate(0).String()
}

// FormatAmount renders d with two decimals: 10000 becomes "10000.00".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
