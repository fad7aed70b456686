package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/render"
	"github.com/Tiliavir/hourbill/internal/storage"
)

var reportPeriod period

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the hour report PDF for a month",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	addPeriodFlags(reportCmd, &reportPeriod)
}

func runReport(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		fatal(err)
	}

	m, err := e.loadMonth(reportPeriod)
	if err != nil {
		fatal(err)
	}

	out := e.layout.ReportPath(e.cfg.Payee.Initials, m.Year, m.Month)
	err = storage.WriteFile(out, func(w io.Writer) error {
		return render.HourReport(w, render.ReportInput{
			Month:     m,
			Company:   e.cfg.Company,
			Payee:     e.cfg.Payee,
			Generated: time.Now(),
		})
	})
	if err != nil {
		fatal(err)
	}
	e.logger.WithComponent("render").Info("hour report written", "path", out)

	fmt.Printf("Hour report for %s %d: %s logged, written to %s\n", m.Month, m.Year, m.Total, out)
	return nil
}
