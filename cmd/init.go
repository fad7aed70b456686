package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/config"
	"github.com/Tiliavir/hourbill/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an annotated config file and create the data directories",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	base := workDir
	if base == "" {
		var err error
		if base, err = storage.BaseDir(); err != nil {
			fatal(err)
		}
	}
	path := configPath
	if path == "" {
		path = filepath.Join(base, config.FileName)
	}

	if err := config.WriteDefault(path); err != nil {
		fatal(err)
	}
	layout := storage.NewLayout(base, "", "", "")
	if err := layout.Ensure(); err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Printf("Place timesheet exports in %s\n", layout.Raw)
	return nil
}
