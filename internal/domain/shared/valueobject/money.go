package valueobject

import (
	"fmt"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"

	DefaultCurrency = USD
)

// Money pairs a decimal amount with its currency for display. Arithmetic
// stays on decimal.Decimal; Money only exists at the formatting edge.
type Money struct {
	amount   decimal.Decimal
	currency *gomoney.Currency
}

// NewMoney fails for codes go-money does not know.
func NewMoney(amount decimal.Decimal, code Currency) (Money, error) {
	if code == "" {
		return Money{}, fmt.Errorf("currency cannot be empty")
	}
	cur := gomoney.GetCurrency(string(code))
	if cur == nil {
		return Money{}, fmt.Errorf("unknown currency %q", code)
	}
	return Money{amount: amount, currency: cur}, nil
}

func USDAmount(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: gomoney.GetCurrency(gomoney.USD)}
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Currency() Currency { return Currency(m.currency.Code) }

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency.Code != other.currency.Code {
		return Money{}, fmt.Errorf("currency mismatch: %s != %s", m.currency.Code, other.currency.Code)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Display formats with the currency's minor units, e.g. "$1,234.50".
func (m Money) Display() string {
	minor := m.amount.Shift(int32(m.currency.Fraction)).Round(0)
	return m.currency.Formatter().Format(minor.IntPart())
}

// DisplayWhole rounds to whole units, e.g. "$1,235". Reports use it for
// values, equity and debt.
func (m Money) DisplayWhole() string {
	c := m.currency
	return gomoney.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template).
		Format(m.amount.Round(0).IntPart())
}

func (m Money) String() string {
	return m.amount.StringFixed(int32(m.currency.Fraction)) + " " + m.currency.Code
}
