package storage_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Tiliavir/hourbill/internal/storage"
)

func TestNewLayoutDefaults(t *testing.T) {
	base := t.TempDir()
	l := storage.NewLayout(base, "", "", "")

	if l.Raw != filepath.Join(base, storage.DefaultRawDir) {
		t.Errorf("Raw = %q", l.Raw)
	}
	if l.Invoices != filepath.Join(base, storage.DefaultInvoiceDir) {
		t.Errorf("Invoices = %q", l.Invoices)
	}
	if l.Hours != filepath.Join(base, storage.DefaultHoursDir) {
		t.Errorf("Hours = %q", l.Hours)
	}
}

func TestNewLayoutAbsolute(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "raw")
	l := storage.NewLayout(base, abs, "out", "")

	if l.Raw != abs {
		t.Errorf("Raw = %q, want %q", l.Raw, abs)
	}
	if l.Invoices != filepath.Join(base, "out") {
		t.Errorf("Invoices = %q", l.Invoices)
	}
}

func TestEnsure(t *testing.T) {
	l := storage.NewLayout(t.TempDir(), "", "", "")
	if err := l.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	for _, dir := range []string{l.Raw, l.Invoices, l.Hours} {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			t.Errorf("expected directory %s: %v", dir, err)
		}
	}
}

func TestPaths(t *testing.T) {
	l := storage.Layout{Raw: "raw", Invoices: "inv", Hours: "hrs"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"source", l.SourcePath("Acme", 2022, time.June), filepath.Join("raw", "Acme_062022.csv")},
		{"source december", l.SourcePath("Acme", 2022, time.December), filepath.Join("raw", "Acme_122022.csv")},
		{"report", l.ReportPath("JD", 2022, time.June), filepath.Join("hrs", "JD_June_2022.pdf")},
		{"plot", l.PlotPath("JD", 2022, time.June), filepath.Join("hrs", "JD_June_2022_weekly.pdf")},
		{"invoice", l.InvoicePath("Acme", 2022, time.June), filepath.Join("inv", "2022-06-Acme.pdf")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s path = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.pdf")

	err := storage.WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "content")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q, want %q", data, "content")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be gone after rename")
	}
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	boom := errors.New("render failed")

	err := storage.WriteFile(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteFile error = %v, want %v", err, boom)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no output file after failed write")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected no temp file after failed write")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	for _, body := range []string{"first", "second"} {
		body := body
		if err := storage.WriteFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, body)
			return err
		}); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}
