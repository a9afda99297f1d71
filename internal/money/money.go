package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for every advert unless configured otherwise.
const DefaultCurrency = "USD"

var (
	ErrCurrencyMismatch     = errors.New("currency mismatch")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrInvalidMonetaryValue = errors.New("invalid monetary value")
)

var (
	hundred = decimal.NewFromInt(100)

	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)

	symbols = map[string]string{
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
	}
)

// Money is an immutable amount of minor units (cents) in a single currency.
//
// Every rounding step rounds half away from zero on the cent boundary, so
// 0.5 cents becomes 1 cent and -0.5 cents becomes -1 cent.
type Money struct {
	cents    int64
	currency string
}

// FromMinorUnits builds a Money from an integer count of cents.
func FromMinorUnits(cents int64, currency string) Money {
	return Money{cents: cents, currency: normalize(currency)}
}

// USD is shorthand for FromMinorUnits(cents, "USD").
func USD(cents int64) Money {
	return FromMinorUnits(cents, DefaultCurrency)
}

// FromMajor parses a major-unit amount such as "104.99" or "104,99".
func FromMajor(value, currency string) (Money, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMonetaryValue, value)
	}
	m, err := fromCents(d.Mul(hundred), normalize(currency))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMonetaryValue, value)
	}
	return m, nil
}

// fromCents rounds a cent amount to a whole cent and rejects anything an
// int64 cannot hold.
func fromCents(d decimal.Decimal, currency string) (Money, error) {
	rounded := d.Round(0)
	if rounded.LessThan(minCents) || rounded.GreaterThan(maxCents) {
		return Money{}, fmt.Errorf("%w: %s cents is out of range", ErrInvalidMonetaryValue, rounded.String())
	}
	return Money{cents: rounded.IntPart(), currency: currency}, nil
}

func finite(name string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %v", ErrInvalidMonetaryValue, name, f)
	}
	return decimal.NewFromFloat(f), nil
}

func normalize(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 { return m.cents }

func (m Money) Currency() string { return m.currency }

// Amount returns the amount in major units.
func (m Money) Amount() decimal.Decimal {
	return decimal.NewFromInt(m.cents).Div(hundred)
}

func (m Money) sameCurrency(op string, other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: cannot %s %s and %s", ErrCurrencyMismatch, op, m.currency, other.currency)
	}
	return nil
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency("add", other); err != nil {
		return Money{}, err
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency("subtract", other); err != nil {
		return Money{}, err
	}
	return Money{cents: m.cents - other.cents, currency: m.currency}, nil
}

// Multiply scales the amount by factor and rounds to the nearest cent.
func (m Money) Multiply(factor float64) (Money, error) {
	f, err := finite("factor", factor)
	if err != nil {
		return Money{}, err
	}
	return fromCents(decimal.NewFromInt(m.cents).Mul(f), m.currency)
}

// Divide splits the amount by divisor and rounds to the nearest cent.
func (m Money) Divide(divisor float64) (Money, error) {
	if divisor == 0 {
		return Money{}, ErrDivisionByZero
	}
	d, err := finite("divisor", divisor)
	if err != nil {
		return Money{}, err
	}
	return fromCents(decimal.NewFromInt(m.cents).Div(d), m.currency)
}

// Percentage returns pct percent of the amount, e.g. Percentage(5) of $100.00 is $5.00.
func (m Money) Percentage(pct float64) (Money, error) {
	p, err := finite("percentage", pct)
	if err != nil {
		return Money{}, err
	}
	return fromCents(decimal.NewFromInt(m.cents).Mul(p).Div(hundred), m.currency)
}

// Compare returns -1, 0 or 1 like cmp.Compare.
func (m Money) Compare(other Money) (int, error) {
	if err := m.sameCurrency("compare", other); err != nil {
		return 0, err
	}
	switch {
	case m.cents < other.cents:
		return -1, nil
	case m.cents > other.cents:
		return 1, nil
	default:
		return 0, nil
	}
}

func (m Money) IsEqualTo(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c == 0 && err == nil, err
}

func (m Money) IsGreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

func (m Money) IsLessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }
func (m Money) IsNegative() bool { return m.cents < 0 }

func (m Money) Abs() Money {
	if m.cents < 0 {
		return Money{cents: -m.cents, currency: m.currency}
	}
	return m
}

// Format renders the amount for display, e.g. "$1,234.56" or "-$5.00".
// Currencies without a known symbol are prefixed with their code: "CHF 10.00".
func (m Money) Format() string {
	fixed := m.Abs().Amount().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if m.cents < 0 {
		b.WriteByte('-')
	}
	if sym, ok := symbols[m.currency]; ok {
		b.WriteString(sym)
	} else {
		b.WriteString(m.currency)
		b.WriteByte(' ')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func (m Money) String() string { return m.Format() }
