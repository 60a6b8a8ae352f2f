package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as the backend sends it: sometimes a JSON
// number, sometimes numeric text with grouping commas ("1,234.50").
// Anything that fails to parse becomes zero instead of an error, so a
// malformed amount never makes the whole order undecodable.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func AmountFromFloat(v float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(v)}
}

func AmountFromInt(v int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(v)}
}

// ParseAmount normalizes a textual amount: trims spaces, strips grouping
// commas, parses as decimal. Returns zero on failure.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{Decimal: decimal.Zero}
	}
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*a = ParseAmount(s)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}
