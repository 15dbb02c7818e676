package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount leniently parses user-entered numbers. Blank or unparseable
// input yields an invalid NullDecimal instead of an error. Currency symbols,
// thousands separators and a trailing percent sign are ignored.
func ParseAmount(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// NullAmount wraps a decimal as a present NullDecimal
func NullAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// FirstNonZero resolves a field stored under several column names.
// The candidates are tried in order and the first present, non-zero value
// wins; absent or zero candidates fall through and the result is zero when
// none qualifies. Order encodes precedence between current and legacy columns.
func FirstNonZero(candidates ...decimal.NullDecimal) decimal.Decimal {
	for _, c := range candidates {
		if c.Valid && !c.Decimal.IsZero() {
			return c.Decimal
		}
	}
	return decimal.Zero
}

// FirstPresent is like FirstNonZero but returns a NullDecimal so callers can
// tell "no value" from zero.
func FirstPresent(candidates ...decimal.NullDecimal) decimal.NullDecimal {
	for _, c := range candidates {
		if c.Valid && !c.Decimal.IsZero() {
			return c
		}
	}
	return decimal.NullDecimal{}
}

// FirstNonEmpty returns the first non-blank string
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// Scaled returns v*factor when v is present, otherwise an invalid NullDecimal
func Scaled(v decimal.NullDecimal, factor decimal.Decimal) decimal.NullDecimal {
	if !v.Valid {
		return v
	}
	return decimal.NewNullDecimal(v.Decimal.Mul(factor))
}

// Divided returns v/divisor rounded to cents when v is present
func Divided(v decimal.NullDecimal, divisor int64) decimal.NullDecimal {
	if !v.Valid || divisor == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v.Decimal.Div(decimal.NewFromInt(divisor)).Round(2))
}
