// Package invoice derives the billable amounts for one reporting month.
package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/money"
	"github.com/Tiliavir/hourbill/internal/timecalc"
)

const (
	// PaymentTermDays is the number of days between invoice and due date.
	PaymentTermDays = 30
	// Description is the text of the single line item.
	Description = "Work hours"
)

// VATRate is the fixed VAT percentage shown on every invoice.
var VATRate = decimal.Zero

// LineItem is one row of the invoice table.
type LineItem struct {
	Quantity    int64
	Description string
	UnitPrice   money.Money
	Amount      money.Money
}

// Invoice is a fully computed invoice ready for rendering.
type Invoice struct {
	Number      string
	Date        time.Time
	Due         time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time

	Company model.Company
	Payee   model.Payee

	Items     []LineItem
	Subtotal  money.Money
	VAT       money.Money
	Total     money.Money
	Converted money.Money

	Rate       decimal.Decimal
	RateSource string
}

// Params are the inputs of Build.
type Params struct {
	Year       int
	Month      time.Month
	TotalHours string
	Issued     time.Time

	HourlyRate      decimal.Decimal
	ConversionRate  decimal.Decimal
	SourceCurrency  money.Currency
	DisplayCurrency money.Currency
	RateSource      string

	Company model.Company
	Payee   model.Payee
}

// Build computes the invoice for a month. Only the whole hours of
// TotalHours are billed; leftover minutes are dropped.
func Build(p Params) (Invoice, error) {
	if !p.HourlyRate.IsPositive() {
		return Invoice{}, fmt.Errorf("hourly rate must be positive, got %s", p.HourlyRate)
	}
	qty, err := timecalc.WholeHours(p.TotalHours)
	if err != nil {
		return Invoice{}, err
	}

	unit := money.New(p.HourlyRate, p.SourceCurrency)
	// The unrounded rate is billed; only the product goes to cents.
	amount := money.New(p.HourlyRate.Mul(decimal.NewFromInt(qty)), p.SourceCurrency)
	vat := amount.Mul(VATRate.Div(decimal.NewFromInt(100)))
	total, err := amount.Add(vat)
	if err != nil {
		return Invoice{}, err
	}
	converted, err := total.ConvertTo(p.DisplayCurrency, p.ConversionRate)
	if err != nil {
		return Invoice{}, err
	}

	issued := timecalc.StartOfDay(p.Issued)
	first, last := timecalc.MonthRange(p.Year, p.Month)
	return Invoice{
		Number:      Number(p.Year, p.Month),
		Date:        issued,
		Due:         issued.AddDate(0, 0, PaymentTermDays),
		PeriodStart: first,
		PeriodEnd:   last,
		Company:     p.Company,
		Payee:       p.Payee,
		Items: []LineItem{{
			Quantity:    qty,
			Description: Description,
			UnitPrice:   unit,
			Amount:      amount,
		}},
		Subtotal:   amount,
		VAT:        vat,
		Total:      total,
		Converted:  converted,
		Rate:       p.ConversionRate,
		RateSource: p.RateSource,
	}, nil
}

// Number returns the invoice number for a month, e.g. "2022-06".
func Number(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}
