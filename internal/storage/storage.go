package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Default directory names, relative to the working directory.
const (
	DefaultRawDir     = "0-RawData"
	DefaultInvoiceDir = "1-Invoices"
	DefaultHoursDir   = "2-ProcessedHours"
)

// Layout holds the directories the tool reads from and writes to.
type Layout struct {
	Raw      string
	Invoices string
	Hours    string
}

// BaseDir returns the working directory that relative layout paths resolve against.
func BaseDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return wd, nil
}

// NewLayout resolves raw, invoices and hours against base. Absolute paths are
// kept as given; empty names fall back to the defaults.
func NewLayout(base, raw, invoices, hours string) Layout {
	return Layout{
		Raw:      resolve(base, raw, DefaultRawDir),
		Invoices: resolve(base, invoices, DefaultInvoiceDir),
		Hours:    resolve(base, hours, DefaultHoursDir),
	}
}

func resolve(base, dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// Ensure creates all layout directories.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.Raw, l.Invoices, l.Hours} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage error creating %s: %w", dir, err)
		}
	}
	return nil
}

// SourcePath returns the timesheet export for a company and month,
// e.g. "0-RawData/Acme_062022.csv".
func (l Layout) SourcePath(company string, year int, month time.Month) string {
	return filepath.Join(l.Raw, fmt.Sprintf("%s_%02d%d.csv", company, int(month), year))
}

// ReportPath returns the hour report path, e.g. "2-ProcessedHours/JD_June_2022.pdf".
func (l Layout) ReportPath(initials string, year int, month time.Month) string {
	return filepath.Join(l.Hours, fmt.Sprintf("%s_%s_%d.pdf", initials, month, year))
}

// PlotPath returns the weekly distribution path next to the hour report.
func (l Layout) PlotPath(initials string, year int, month time.Month) string {
	return filepath.Join(l.Hours, fmt.Sprintf("%s_%s_%d_weekly.pdf", initials, month, year))
}

// InvoicePath returns the invoice path, e.g. "1-Invoices/2022-06-Acme.pdf".
func (l Layout) InvoicePath(company string, year int, month time.Month) string {
	return filepath.Join(l.Invoices, fmt.Sprintf("%d-%02d-%s.pdf", year, int(month), company))
}

// WriteFile atomically writes the output of write to path. Nothing is left at
// path if write fails.
func WriteFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
