package domain

import (
	"github.com/shopspring/decimal" // Arbitrary-precision decimals
)

// MoneyScale is the number of fractional digits stored for amounts
const MoneyScale = 2

// Money is a decimal amount rendered in JSON as a number with two fractional digits.
// It scans from and values into DECIMAL(15,2) columns through the embedded decimal.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// ZeroMoney is 0.00
var ZeroMoney = Money{Decimal: decimal.Zero}

// MarshalJSON emits an unquoted number such as 110.00
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(MoneyScale)), nil
}

// String formats with the stored scale
func (m Money) String() string {
	return m.StringFixed(MoneyScale)
}
