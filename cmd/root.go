package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	workDir    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "hourbill",
	Short: "hourbill – hour reports and invoices from timesheet exports",
	Long: `hourbill turns a monthly timesheet export into a printable hour report
and a client invoice. Exports are read from 0-RawData/<company>_<MM><YYYY>.csv,
reports are written to 2-ProcessedHours/ and invoices to 1-Invoices/.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./hourbill.json)")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "Working directory the data directories live in (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}
