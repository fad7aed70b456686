package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tiliavir/hourbill/internal/config"
	"github.com/Tiliavir/hourbill/internal/money"
	"github.com/Tiliavir/hourbill/internal/storage"
)

func TestLoadWritesTemplateOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for missing config")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected template to be written: %v", err)
	}

	// The template is a complete, valid config.
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load template: %v", err)
	}
	if cfg.Company.Name != "CompanyName" {
		t.Errorf("company name = %q", cfg.Company.Name)
	}
	if cfg.Payee.Initials != "MN" {
		t.Errorf("initials = %q", cfg.Payee.Initials)
	}
	if cfg.Billing.ConversionRate.String() != "1.232204" {
		t.Errorf("conversion rate = %s", cfg.Billing.ConversionRate)
	}
	if cfg.Billing.SourceCurrency != money.GBP || cfg.Billing.DisplayCurrency != money.USD {
		t.Errorf("currencies = %s/%s", cfg.Billing.SourceCurrency, cfg.Billing.DisplayCurrency)
	}
}

func TestWriteDefaultKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := config.WriteDefault(path); err == nil {
		t.Fatal("expected error when config already exists")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{}" {
		t.Errorf("existing config was overwritten: %q", data)
	}
}

func TestParseMissingFields(t *testing.T) {
	doc := `{
  // only a partial config
  "company": {"name": "Acme"},
  "payee": {"name": "Jane Doe", "initials": "JD"},
  "billing": {"hourly_rate": 20, "conversion_rate": "1.2"}
}`
	_, err := config.Parse([]byte(doc))
	if !errors.Is(err, config.ErrMissingField) {
		t.Fatalf("Parse error = %v, want ErrMissingField", err)
	}
	for _, field := range []string{"company.street", "company.postcode", "payee.swift", "payee.account_nb"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
	if strings.Contains(err.Error(), "company.name") {
		t.Errorf("error %q mentions a field that is set", err)
	}
}

func TestParseDefaultsAndNormalization(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := config.WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := strings.NewReplacer(
		`"source_currency": "GBP"`, `"source_currency": " eur "`,
		`"display_currency": "USD"`, `"display_currency": ""`,
		`"hours": "2-ProcessedHours"`, `"hours": ""`,
	).Replace(string(data))

	cfg, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Billing.SourceCurrency != money.EUR {
		t.Errorf("source currency = %q, want EUR", cfg.Billing.SourceCurrency)
	}
	if cfg.Billing.DisplayCurrency != config.DefaultDisplayCurrency {
		t.Errorf("display currency = %q", cfg.Billing.DisplayCurrency)
	}
	if cfg.Directories.Hours != storage.DefaultHoursDir {
		t.Errorf("hours dir = %q", cfg.Directories.Hours)
	}

	base := t.TempDir()
	if got := cfg.Layout(base).Hours; got != filepath.Join(base, storage.DefaultHoursDir) {
		t.Errorf("layout hours = %q", got)
	}
}

func TestParseInvalidRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := config.WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	doc := strings.NewReplacer(
		`"hourly_rate": "1"`, `"hourly_rate": "0"`,
		`"display_currency": "USD"`, `"display_currency": "XYZ"`,
	).Replace(string(data))

	_, err := config.Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected error for invalid billing section")
	}
	if !strings.Contains(err.Error(), "hourly_rate") || !strings.Contains(err.Error(), "display_currency") {
		t.Errorf("error %q does not name both invalid fields", err)
	}
}

func TestParseBadJSON(t *testing.T) {
	if _, err := config.Parse([]byte("{bad json")); err == nil {
		t.Fatal("expected error for corrupt JSON")
	}
}
