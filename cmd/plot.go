package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/plot"
	"github.com/Tiliavir/hourbill/internal/render"
	"github.com/Tiliavir/hourbill/internal/storage"
)

var plotPeriod period

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Write the weekly shift distribution chart for a month",
	Args:  cobra.NoArgs,
	RunE:  runPlot,
}

func init() {
	addPeriodFlags(plotCmd, &plotPeriod)
}

func runPlot(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		fatal(err)
	}

	m, err := e.loadMonth(plotPeriod)
	if err != nil {
		fatal(err)
	}

	dist := plot.Distribute(m.Shifts)
	out := e.layout.PlotPath(e.cfg.Payee.Initials, m.Year, m.Month)
	if err := storage.WriteFile(out, func(w io.Writer) error { return render.Weekly(w, dist) }); err != nil {
		fatal(err)
	}
	e.logger.WithComponent("render").Info("weekly chart written", "path", out, "weeks", len(dist.Weeks))

	fmt.Printf("Weekly distribution for %s %d written to %s\n", m.Month, m.Year, out)
	return nil
}
