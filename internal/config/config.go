package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/money"
	"github.com/Tiliavir/hourbill/internal/storage"
)

// ErrMissingField is returned by Validate for every mandatory field left empty.
var ErrMissingField = errors.New("missing required field")

// FileName is the default config file, relative to the working directory.
const FileName = "hourbill.json"

// Config is the root configuration for hourbill, stored in ./hourbill.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Company     model.Company     `json:"company"`
	Payee       model.Payee       `json:"payee"`
	Billing     BillingConfig     `json:"billing"`
	Directories DirectoriesConfig `json:"directories"`
}

// BillingConfig holds the rates used to compute the invoice.
type BillingConfig struct {
	// HourlyRate is the pay per whole hour in SourceCurrency.
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	// ConversionRate is the number of DisplayCurrency units per SourceCurrency unit.
	ConversionRate  decimal.Decimal `json:"conversion_rate"`
	SourceCurrency  money.Currency  `json:"source_currency"`
	DisplayCurrency money.Currency  `json:"display_currency"`
	// RateSource is quoted in the exchange-rate disclosure of the invoice.
	RateSource string `json:"rate_source"`
}

// DirectoriesConfig holds the input and output directories. Relative paths
// resolve against the working directory.
type DirectoriesConfig struct {
	Raw      string `json:"raw"`
	Invoices string `json:"invoices"`
	Hours    string `json:"hours"`
}

const (
	DefaultSourceCurrency  = money.GBP
	DefaultDisplayCurrency = money.USD
	DefaultRateSource      = "OANDA's monthly average rate"
)

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// hourbill configuration – ./hourbill.json
//
// Every field under "company" and "payee" is required. Replace the
// placeholders below before generating reports or invoices.
{
  // ── Client being billed ──────────────────────────────────────────────────
  // "name" is also the prefix of the timesheet export: <name>_<MM><YYYY>.csv
  "company": {
    "name": "CompanyName",
    "street": "Building Street",
    "street_cont": "123 Street",
    "city": "Company city",
    "postcode": "12345"
  },

  // ── You ──────────────────────────────────────────────────────────────────
  // "initials" prefixes the hour report file name.
  "payee": {
    "name": "My Name",
    "initials": "MN",
    "position": "My position",
    "email": "myemail@company.com",
    "street": "My Street 123",
    "city": "MyCity",
    "state": "MyState",
    "postcode": "12345",
    "country": "My Country",
    "phone": "+123 456 789",
    "bank_name": "My Bank",
    "bank_address": "1234 Bank Street, Bank State, Country, Zip code",
    "holder_name": "Holder Name",
    "swift": "ABCDEF12",
    "routing_nb": "123456789",
    "account_nb": "12345679012"
  },

  // ── Billing ──────────────────────────────────────────────────────────────
  // Only whole hours are billed. Can be overridden per run with
  // hourbill invoice --rate <n> --conversion <n>
  "billing": {
    "hourly_rate": "1",
    "conversion_rate": "1.232204",
    "source_currency": "GBP",
    "display_currency": "USD",
    "rate_source": "OANDA's monthly average rate"
  },

  // ── Directories ──────────────────────────────────────────────────────────
  "directories": {
    "raw": "0-RawData",
    "invoices": "1-Invoices",
    "hours": "2-ProcessedHours"
  }
}
`

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config at path. A missing file is created from the annotated
// template and reported as an error, since the template only holds placeholders.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := WriteDefault(path); writeErr != nil {
			return Config{}, fmt.Errorf("config file %s not found and could not be created: %w", path, writeErr)
		}
		return Config{}, fmt.Errorf("config file %s not found; an annotated template was written, edit it and re-run", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a config document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Billing.SourceCurrency = money.Currency(strings.ToUpper(strings.TrimSpace(string(cfg.Billing.SourceCurrency))))
	cfg.Billing.DisplayCurrency = money.Currency(strings.ToUpper(strings.TrimSpace(string(cfg.Billing.DisplayCurrency))))

	// Fill zero-value fields with built-in defaults.
	if cfg.Billing.SourceCurrency == "" {
		cfg.Billing.SourceCurrency = DefaultSourceCurrency
	}
	if cfg.Billing.DisplayCurrency == "" {
		cfg.Billing.DisplayCurrency = DefaultDisplayCurrency
	}
	if cfg.Billing.RateSource == "" {
		cfg.Billing.RateSource = DefaultRateSource
	}
	if cfg.Directories.Raw == "" {
		cfg.Directories.Raw = storage.DefaultRawDir
	}
	if cfg.Directories.Invoices == "" {
		cfg.Directories.Invoices = storage.DefaultInvoiceDir
	}
	if cfg.Directories.Hours == "" {
		cfg.Directories.Hours = storage.DefaultHoursDir
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing identity field and every invalid rate.
func (c Config) Validate() error {
	var errs []error
	missing := func(section, field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrMissingField, section, field))
		}
	}

	missing("company", "name", c.Company.Name)
	missing("company", "street", c.Company.Street)
	missing("company", "street_cont", c.Company.StreetCont)
	missing("company", "city", c.Company.City)
	missing("company", "postcode", c.Company.Postcode)

	p := c.Payee
	for _, f := range []struct{ name, value string }{
		{"name", p.Name}, {"initials", p.Initials}, {"position", p.Position}, {"email", p.Email},
		{"street", p.Street}, {"city", p.City}, {"state", p.State}, {"postcode", p.Postcode},
		{"country", p.Country}, {"phone", p.Phone},
		{"bank_name", p.BankName}, {"bank_address", p.BankAddress}, {"holder_name", p.HolderName},
		{"swift", p.Swift}, {"routing_nb", p.RoutingNb}, {"account_nb", p.AccountNb},
	} {
		missing("payee", f.name, f.value)
	}

	if !c.Billing.HourlyRate.IsPositive() {
		errs = append(errs, fmt.Errorf("billing.hourly_rate must be positive, got %s", c.Billing.HourlyRate))
	}
	if !c.Billing.ConversionRate.IsPositive() {
		errs = append(errs, fmt.Errorf("billing.conversion_rate must be positive, got %s", c.Billing.ConversionRate))
	}
	if _, err := money.ParseCurrency(string(c.Billing.SourceCurrency)); err != nil {
		errs = append(errs, fmt.Errorf("billing.source_currency: %w", err))
	}
	if _, err := money.ParseCurrency(string(c.Billing.DisplayCurrency)); err != nil {
		errs = append(errs, fmt.Errorf("billing.display_currency: %w", err))
	}

	return errors.Join(errs...)
}

// Layout resolves the configured directories against base.
func (c Config) Layout(base string) storage.Layout {
	return storage.NewLayout(base, c.Directories.Raw, c.Directories.Invoices, c.Directories.Hours)
}

// WriteDefault creates the config directory and writes the annotated default
// config template. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
