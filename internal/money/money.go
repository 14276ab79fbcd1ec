// Package money holds the currency amount used for order totals and revenue.
package money

import (
	"github.com/shopspring/decimal"
)

// Money is a NUMERIC(10,2) amount. It marshals to a JSON number with exactly
// two fraction digits.
type Money struct {
	decimal.Decimal
}

// Zero is 0.00.
var Zero = Money{decimal.Zero}

func New(d decimal.Decimal) Money { return Money{d} }

// FromString parses "12", "12.5" or "12.50".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// MustParse is FromString for literals in seed data and tests.
func MustParse(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

func (m Money) Add(o Money) Money { return Money{m.Decimal.Add(o.Decimal)} }

// Avg divides by n and rounds half away from zero to cents. n <= 0 gives Zero.
func (m Money) Avg(n int64) Money {
	if n <= 0 {
		return Zero
	}
	return Money{m.Decimal.Div(decimal.NewFromInt(n)).Round(2)}
}

func (m Money) Equal(o Money) bool { return m.Decimal.Equal(o.Decimal) }

func (m Money) String() string { return m.StringFixed(2) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

// UnmarshalJSON accepts both 12.50 and "12.50".
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

// Scan reads NUMERIC columns (selected as ::text) from pgx.
func (m *Money) Scan(value interface{}) error {
	return m.Decimal.Scan(value)
}
