package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/hance08/txengine/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	scale    = decimal.NewFromInt(constants.MoneyScale)
	maxUnits = decimal.NewFromInt(math.MaxInt64)
	minUnits = decimal.NewFromInt(math.MinInt64)
)

// FormatFromUnits renders fixed-point units with constants.MoneyPrecision digits,
// e.g. 10000000 -> "1000.0000"
func FormatFromUnits(units int64) string {
	return decimal.New(units, -constants.MoneyPrecision).StringFixed(constants.MoneyPrecision)
}

// ParseToUnits converts a decimal string to fixed-point units.
// Digits beyond constants.MoneyPrecision are truncated, not rounded.
// e.g., "1.5" -> 15000, "0.00019" -> 1
func ParseToUnits(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	units := d.Mul(scale).Truncate(0)
	if units.GreaterThan(maxUnits) || units.LessThan(minUnits) {
		return 0, fmt.Errorf("amount out of range: %s", amountStr)
	}

	return units.IntPart(), nil
}
