package model

import "github.com/hance08/txengine/internal/utils"

// Money is a fixed-point amount with constants.MoneyScale units per currency unit.
type Money int64

type ClientID uint16

type TxID uint32

// ParseMoney converts a decimal string to Money, truncating extra digits.
func ParseMoney(s string) (Money, error) {
	units, err := utils.ParseToUnits(s)
	if err != nil {
		return 0, err
	}
	return Money(units), nil
}

func (m Money) String() string {
	return utils.FormatFromUnits(int64(m))
}

// Add returns m+o, or false when the sum does not fit in a Money.
func (m Money) Add(o Money) (Money, bool) {
	sum := m + o
	if (o > 0 && sum < m) || (o < 0 && sum > m) {
		return 0, false
	}
	return sum, true
}
