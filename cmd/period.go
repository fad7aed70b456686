package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hourbill/internal/config"
	"github.com/Tiliavir/hourbill/internal/log"
	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/storage"
	"github.com/Tiliavir/hourbill/internal/timesheet"
)

// period is the reporting month selected with --month and --year.
type period struct {
	month int
	year  int
}

func addPeriodFlags(cmd *cobra.Command, p *period) {
	cmd.Flags().IntVar(&p.month, "month", 0, "Reporting month 1-12 (default: current month)")
	cmd.Flags().IntVar(&p.year, "year", 0, "Reporting year (default: current year)")
}

// resolve fills unset fields from now and validates the month.
func (p period) resolve(now time.Time) (int, time.Month, error) {
	year, month := p.year, p.month
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid --month %d: want 1-12", month)
	}
	if year < 1 {
		return 0, 0, fmt.Errorf("invalid --year %d", year)
	}
	return year, time.Month(month), nil
}

// env is what every command needs after reading flags and config.
type env struct {
	cfg    config.Config
	layout storage.Layout
	logger *log.Logger
}

func newLogger() *log.Logger {
	lc := log.DefaultConfig()
	lvl, err := log.ParseLevel(logLevel)
	if err == nil {
		lc.Level = lvl
	}
	logger := log.New(lc)
	if err != nil {
		logger.Warn("falling back to info level", "error", err)
	}
	return logger
}

func setup() (*env, error) {
	logger := newLogger()

	base := workDir
	if base == "" {
		var err error
		base, err = storage.BaseDir()
		if err != nil {
			return nil, err
		}
	}

	path := configPath
	if path == "" {
		path = filepath.Join(base, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path)

	return &env{cfg: cfg, layout: cfg.Layout(base), logger: logger}, nil
}

// loadMonth reads the timesheet export of the configured company.
func (e *env) loadMonth(p period) (model.Month, error) {
	year, month, err := p.resolve(time.Now())
	if err != nil {
		return model.Month{}, err
	}

	src := e.layout.SourcePath(e.cfg.Company.Name, year, month)
	m, loc, err := timesheet.Load(src, year, month)
	if err != nil {
		return model.Month{}, err
	}
	e.logger.WithComponent("timesheet").Info("timesheet loaded",
		"path", src, "locale", loc, "shifts", len(m.Shifts), "total", m.Total)
	return m, nil
}

// fatal logs err and exits with the runtime failure status.
func fatal(err error) {
	newLogger().Error("command failed", "error", err)
	os.Exit(2)
}
