// Package config carries the data-driven parts of extraction: per-bank
// detection pattern sets, numeric plausibility bounds, and the detection
// tie-break order. Defaults reflect the statement samples the rules were
// tuned on; a YAML file can override any of them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Bounds is a numeric plausibility band for extracted amounts. Zero values
// disable the corresponding check.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config is the process-wide extraction configuration, loaded once and
// immutable afterwards.
type Config struct {
	// DetectionPatterns maps a bank ID to its ordered detection regexes.
	DetectionPatterns map[models.Bank][]string `yaml:"detection_patterns"`
	// TieBreakOrder resolves equal detection scores deterministically.
	TieBreakOrder []models.Bank `yaml:"tie_break_order"`
	// CreditLimitBounds holds the per-bank plausibility band applied to
	// credit-limit candidates.
	CreditLimitBounds map[models.Bank]Bounds `yaml:"credit_limit_bounds"`
	// MaxFiles and MaxFileSize bound a single upload batch.
	MaxFiles    int   `yaml:"max_files"`
	MaxFileSize int64 `yaml:"max_file_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DetectionPatterns: map[models.Bank][]string{
			models.BankAxis: {
				`AXIS\s+BANK`,
				`Axis\s+Bank`,
				`AXIS\s+BANK\s+LIMITED`,
				`www\.axisbank\.com`,
				`Axis\s+Credit\s+Card`,
			},
			models.BankCiti: {
				`CITI\s*BANK`,
				`Citibank`,
				`CITIBANK\s+N\.A\.`,
				`Citi\s+Credit\s+Card`,
				`www\.citibank\.co\.in`,
				`CITI\s+INDIA`,
			},
			models.BankHDFC: {
				`HDFC\s+BANK`,
				`HDFC\s+Bank`,
				`HDFC\s+BANK\s+LTD`,
				`www\.hdfcbank\.com`,
				`HDFC\s+Credit\s+Card`,
				`Housing\s+Development\s+Finance\s+Corporation`,
			},
			models.BankICICI: {
				`ICICI\s+BANK`,
				`ICICI\s+Bank`,
				`ICICI\s+BANK\s+LIMITED`,
				`www\.icicibank\.com`,
				`ICICI\s+Credit\s+Card`,
			},
			models.BankSilk: {
				`SILK\s+BANK`,
				`Silk\s+Bank`,
				`SILKBANK\s+LIMITED`,
				`www\.silkbank\.com`,
				`Silk\s+Credit\s+Card`,
			},
		},
		TieBreakOrder: models.SupportedBanks,
		CreditLimitBounds: map[models.Bank]Bounds{
			models.BankAxis: {Min: 10000},
			models.BankCiti: {Min: 50000},
			models.BankSilk: {Min: 5000, Max: 10000000},
		},
		MaxFiles:    5,
		MaxFileSize: 10 << 20,
	}
}

// LimitBounds returns the credit-limit plausibility band configured for
// bank, or nil when the bank has none.
func (c *Config) LimitBounds(bank models.Bank) *Bounds {
	if b, ok := c.CreditLimitBounds[bank]; ok {
		return &b
	}
	return nil
}

// Load reads a YAML override file and merges it over the defaults. Only the
// sections present in the file replace their default counterparts.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := Default()
	if len(override.DetectionPatterns) > 0 {
		for bank, patterns := range override.DetectionPatterns {
			cfg.DetectionPatterns[bank] = patterns
		}
	}
	if len(override.TieBreakOrder) > 0 {
		cfg.TieBreakOrder = override.TieBreakOrder
	}
	for bank, bounds := range override.CreditLimitBounds {
		cfg.CreditLimitBounds[bank] = bounds
	}
	if override.MaxFiles > 0 {
		cfg.MaxFiles = override.MaxFiles
	}
	if override.MaxFileSize > 0 {
		cfg.MaxFileSize = override.MaxFileSize
	}
	return cfg, nil
}
