package render

import (
	"fmt"
	"io"

	"github.com/Tiliavir/hourbill/internal/invoice"
	"github.com/Tiliavir/hourbill/internal/money"
)

// Invoice writes the invoice PDF to w.
func Invoice(w io.Writer, inv invoice.Invoice) error {
	d := newDocument("P")
	pdf := d.pdf
	pdf.SetXY(0, 0)

	payee, company := inv.Payee, inv.Company

	d.font("B", 18)
	d.cell(1, 15, "", false, 1, "", false)
	d.cell(190, 10, "", false, 1, "C", false)

	// Banner
	pdf.SetFillColor(120, 194, 100)
	pdf.SetTextColor(255, 255, 255)
	d.cell(160, 10, payee.Name, false, 0, "L", true)
	d.cell(30, 10, "INVOICE", false, 1, "R", true)
	d.cell(10, 5, "", false, 2, "C", false)
	pdf.SetTextColor(0, 0, 0)

	// Payee address
	d.font("", 13)
	d.cell(40, 5, payee.Street, false, 2, "L", false)
	d.cell(40, 5, fmt.Sprintf("%s, %s %s", payee.City, payee.State, payee.Postcode), false, 2, "L", false)
	d.cell(40, 5, payee.Country, false, 2, "L", false)
	d.cell(40, 5, "Mobile: "+payee.Phone, false, 2, "L", false)
	d.cell(1, 21, "", false, 1, "R", false)

	// Bill to and invoice info
	info := [][2]string{
		{"Invoice #:", inv.Number},
		{"Invoice Date:", inv.Date.Format("02/01/2006")},
		{"Due Date:", inv.Due.Format("02/01/2006")},
	}
	d.font("B", 13)
	d.cell(40, 5, "Bill To ", false, 0, "L", false)
	billTo := []string{company.Name, company.Street, company.StreetCont, company.City, company.Postcode}
	for i, line := range info {
		if i > 0 {
			d.font("", 12)
			d.cell(40, 5, billTo[i-1], false, 0, "L", false)
		}
		d.font("B", 13)
		d.cell(120, 5, line[0], false, 0, "R", false)
		d.font("", 12)
		d.cell(30, 5, line[1], false, 1, "R", false)
	}
	for _, line := range billTo[len(info)-1:] {
		d.cell(40, 5, line, false, 1, "L", false)
	}
	d.cell(2, 10, "", false, 1, "C", false)

	// Table
	const (
		qtyWidth    = 20.0
		descWidth   = 105.0
		priceWidth  = 30.0
		amountWidth = 34.0
		labelWidth  = qtyWidth + descWidth + priceWidth
		rowHeight   = 7.0
	)
	d.font("B", 12)
	pdf.SetFillColor(240, 240, 220)
	d.cell(qtyWidth, 9, "QTY", true, 0, "C", true)
	d.cell(descWidth, 9, "DESCRIPTION", true, 0, "C", true)
	d.cell(priceWidth, 9, "UNIT PRICE", true, 0, "C", true)
	d.cell(amountWidth, 9, "AMOUNT", true, 1, "C", true)

	d.font("", 11)
	for i, item := range inv.Items {
		fill := i%2 == 1
		d.cell(qtyWidth, rowHeight, fmt.Sprintf("%d", item.Quantity), true, 0, "C", fill)
		d.cell(descWidth, rowHeight, item.Description, true, 0, "L", fill)
		d.cell(priceWidth, rowHeight, item.UnitPrice.FormatWithSymbol(), true, 0, "R", fill)
		d.cell(amountWidth, rowHeight, item.Amount.FormatWithSymbol(), true, 1, "R", fill)
	}

	d.cell(labelWidth, rowHeight+2, "Subtotal", false, 0, "R", false)
	d.cell(amountWidth, rowHeight+2, inv.Subtotal.FormatWithSymbol(), true, 1, "R", false)
	d.cell(labelWidth, rowHeight+2, fmt.Sprintf("VAT %s%%", invoice.VATRate.StringFixed(1)), false, 0, "R", false)
	d.cell(amountWidth, rowHeight+2, money.FormatAmount(inv.VAT.Amount()), true, 1, "R", false)

	d.font("B", 15)
	pdf.SetFillColor(240, 240, 220)
	d.cell(labelWidth, rowHeight+2, "Total in "+string(inv.Total.Currency), false, 0, "R", false)
	d.cell(amountWidth, rowHeight+2, inv.Total.FormatWithSymbol(), true, 1, "R", true)
	d.cell(labelWidth, rowHeight+2, "Total in "+string(inv.Converted.Currency), false, 0, "R", false)
	d.cell(amountWidth, rowHeight+2, inv.Converted.FormatWithSymbol(), true, 1, "R", true)

	d.cell(1, 10, "", false, 1, "", false)

	// Exchange rate
	d.font("B", 11)
	d.cell(10, 5, fmt.Sprintf("Using 1 %s = %s %s", inv.Total.Currency, inv.Rate, inv.Converted.Currency), false, 2, "", false)
	d.font("", 11)
	d.cell(10, 5, fmt.Sprintf("(Obtained from %s from %s - %s)",
		inv.RateSource, inv.PeriodStart.Format("02"), inv.PeriodEnd.Format("02 January, 2006")), false, 2, "", false)

	d.cell(1, 40, "", false, 1, "", false)

	// Bank details
	d.font("B", 15)
	d.cell(120, 5, "PAYMENT DETAILS:", false, 2, "", false)
	d.cell(120, 3, "", false, 2, "", false)
	d.font("", 12)
	for _, line := range []string{
		payee.BankName,
		payee.BankAddress,
		"Holder: " + payee.HolderName,
		"SWIFT code: " + payee.Swift,
		"Routing Nr.: " + payee.RoutingNb,
		"Account Nr.: " + payee.AccountNb,
	} {
		d.cell(120, 5, line, false, 2, "", false)
	}

	return d.output(w)
}
