package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/timecalc"
)

var listPeriod period

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resolved shifts of a month",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addPeriodFlags(listCmd, &listPeriod)
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		fatal(err)
	}

	m, err := e.loadMonth(listPeriod)
	if err != nil {
		fatal(err)
	}

	printList(os.Stdout, m)
	return nil
}

// printList prints one line per shift followed by the month total.
func printList(w io.Writer, m model.Month) {
	if len(m.Shifts) == 0 {
		fmt.Fprintln(w, "No shifts found.")
		return
	}

	fmt.Fprintf(w, "%s %d\n", m.Month, m.Year)
	fmt.Fprintln(w, "--------------------------------")
	for _, s := range m.Shifts {
		next := ""
		if !timecalc.SameDay(s.Begin, s.End) {
			next = " (+1)"
		}
		notes := ""
		if s.Notes != "" {
			notes = "  " + s.Notes
		}
		fmt.Fprintf(w, "%s  %s–%s%s  %s%s\n",
			s.Date.Format("2006-01-02"),
			s.Begin.Format("15:04"),
			s.End.Format("15:04"),
			next,
			timecalc.FormatClock(s.Duration),
			notes,
		)
	}
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%s\n", "Total", m.Total)
}
