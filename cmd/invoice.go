package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/invoice"
	"github.com/Tiliavir/hourbill/internal/render"
	"github.com/Tiliavir/hourbill/internal/storage"
)

var (
	invoicePeriod     period
	invoiceRate       string
	invoiceConversion string
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Write the invoice PDF for a month",
	Args:  cobra.NoArgs,
	RunE:  runInvoice,
}

func init() {
	addPeriodFlags(invoiceCmd, &invoicePeriod)
	invoiceCmd.Flags().StringVar(&invoiceRate, "rate", "", "Hourly rate in the source currency (overrides config)")
	invoiceCmd.Flags().StringVar(&invoiceConversion, "conversion", "", "Display currency units per source currency unit (overrides config)")
}

// overrideDecimal parses flag if set, otherwise returns fallback.
func overrideDecimal(name, flag string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if flag == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(flag)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q: %w", name, flag, err)
	}
	return d, nil
}

func runInvoice(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		fatal(err)
	}

	billing := e.cfg.Billing
	rate, err := overrideDecimal("rate", invoiceRate, billing.HourlyRate)
	if err != nil {
		return err
	}
	conversion, err := overrideDecimal("conversion", invoiceConversion, billing.ConversionRate)
	if err != nil {
		return err
	}

	m, err := e.loadMonth(invoicePeriod)
	if err != nil {
		fatal(err)
	}

	inv, err := invoice.Build(invoice.Params{
		Year:            m.Year,
		Month:           m.Month,
		TotalHours:      m.Total,
		Issued:          time.Now(),
		HourlyRate:      rate,
		ConversionRate:  conversion,
		SourceCurrency:  billing.SourceCurrency,
		DisplayCurrency: billing.DisplayCurrency,
		RateSource:      billing.RateSource,
		Company:         e.cfg.Company,
		Payee:           e.cfg.Payee,
	})
	if err != nil {
		fatal(err)
	}

	out := e.layout.InvoicePath(e.cfg.Company.Name, m.Year, m.Month)
	if err := storage.WriteFile(out, func(w io.Writer) error { return render.Invoice(w, inv) }); err != nil {
		fatal(err)
	}
	e.logger.WithComponent("render").Info("invoice written",
		"path", out, "number", inv.Number, "hours", inv.Items[0].Quantity, "total", inv.Total, "converted", inv.Converted)

	fmt.Printf("Invoice %s: %d h × %s = %s (%s), written to %s\n",
		inv.Number, inv.Items[0].Quantity, inv.Items[0].UnitPrice, inv.Total, inv.Converted, out)
	return nil
}
