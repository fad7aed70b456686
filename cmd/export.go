package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/timecalc"
)

var (
	exportPeriod period
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resolved shifts of a month to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	addPeriodFlags(exportCmd, &exportPeriod)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md (Markdown table)")
}

func runExport(cmd *cobra.Command, args []string) error {
	switch exportFormat {
	case "csv", "json", "md":
	default:
		return fmt.Errorf("unknown --format %q: want csv, json or md", exportFormat)
	}

	e, err := setup()
	if err != nil {
		fatal(err)
	}

	m, err := e.loadMonth(exportPeriod)
	if err != nil {
		fatal(err)
	}

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "md":
		printMarkdown(os.Stdout, m)
	default:
		if err := printCSV(os.Stdout, m.Shifts); err != nil {
			fatal(err)
		}
	}

	return nil
}

func printCSV(w io.Writer, shifts []model.Shift) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "begin", "end", "duration_minutes", "notes"}); err != nil {
		return err
	}
	for _, s := range shifts {
		record := []string{
			s.Date.Format("2006-01-02"),
			s.Begin.Format(time.RFC3339),
			s.End.Format(time.RFC3339),
			strconv.FormatInt(int64(s.Duration/time.Minute), 10),
			s.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// printMarkdown writes the month as a Markdown table with a total row.
func printMarkdown(w io.Writer, m model.Month) {
	fmt.Fprintf(w, "## %s %d\n\n", m.Month, m.Year)
	fmt.Fprintln(w, "| Date | Begin | End | Hours | Notes |")
	fmt.Fprintln(w, "|------|-------|-----|------:|-------|")
	for _, s := range m.Shifts {
		end := s.End.Format("15:04")
		if !timecalc.SameDay(s.Begin, s.End) {
			end += " (+1)"
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			s.Date.Format("2006-01-02"),
			s.Begin.Format("15:04"),
			end,
			timecalc.FormatClock(s.Duration),
			markdownEscaper.Replace(s.Notes),
		)
	}
	fmt.Fprintf(w, "| **Total** | | | **%s** | |\n", m.Total)
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")
