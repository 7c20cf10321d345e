package radar

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when the backend omits an account currency.
const DefaultCurrency = "RUB"

// Placeholder is rendered in place of a value that cannot be formatted,
// such as a NaN produced by malformed holdings data.
const Placeholder = "—"

// Money is a monetary display value. It exists to format totals the way
// the UI does: locale-aware grouping separators and the currency symbol,
// with the em-dash placeholder for non-finite inputs instead of an
// error or a "NaN" string.
type Money struct {
	value decimal.Decimal
	cur   string
	bad   bool // the input was NaN or infinite
}

// M builds a Money from a float64 amount. An empty currency means
// DefaultCurrency. Non-finite amounts are accepted and render as the
// placeholder.
func M(value float64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency, bad: true}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the full go-money currency for the code; the Money
// constructor guarantees a non-nil currency even for unknown codes.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency's fraction digits,
// grouping separators and symbol.
func (m Money) String() string {
	if m.bad {
		return Placeholder
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Rounded renders the value without fraction digits, as the headline
// total is displayed.
func (m Money) Rounded() string {
	if m.bad {
		return Placeholder
	}
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.value.Round(0).IntPart())
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsZero() bool     { return !m.bad && m.value.IsZero() }

// Equal reports value and currency equality; two placeholder values of
// the same currency are equal.
func (m Money) Equal(n Money) bool {
	if m.bad || n.bad {
		return m.bad == n.bad && m.cur == n.cur
	}
	return m.value.Equal(n.value) && m.cur == n.cur
}

// DecimalMoney builds a Money from an exact decimal amount, as the
// calendar endpoint serves them.
func DecimalMoney(value decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: value, cur: currency}
}
