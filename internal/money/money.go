package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

func (c Currency) Symbol() string {
	switch c {
	case GBP:
		return "£"
	case USD:
		return "$"
	case EUR:
		return "€"
	default:
		return string(c)
	}
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case GBP, USD, EUR:
		return c, nil
	}
	return "", fmt.Errorf("unsupported currency: %q", s)
}

// Money is an amount rounded to cents in a single currency.
type Money struct {
	cents    int64
	Currency Currency
}

func New(amount decimal.Decimal, currency Currency) Money {
	return Money{
		cents:    decimalToCents(amount),
		Currency: currency,
	}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return New(m.Amount().Mul(factor), m.Currency)
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency, other.Currency)
	}

	return Money{
		cents:    m.cents + other.cents,
		Currency: m.Currency,
	}, nil
}

// ConvertTo converts m at a fixed rate, given as units of target per unit of
// m's currency. The result is rounded half away from zero to cents.
func (m Money) ConvertTo(target Currency, rate decimal.Decimal) (Money, error) {
	if m.Currency == target {
		return m, nil
	}
	if !rate.IsPositive() {
		return Money{}, fmt.Errorf("invalid conversion rate %s from %s to %s", rate, m.Currency, target)
	}
	return New(m.Amount().Mul(rate), target), nil
}

func (m Money) Amount() decimal.Decimal {
	return centsToDecimal(m.cents)
}

func (m Money) String() string {
	return m.FormatWithSymbol()
}

// FormatWithSymbol renders the amount as e.g. "£ 1,234.50".
func (m Money) FormatWithSymbol() string {
	return fmt.Sprintf("%s %s", m.Currency.Symbol(), FormatAmount(m.Amount()))
}

// FormatAmount renders d with two decimals and comma thousands separators.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}

func decimalToCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func centsToDecimal(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}
