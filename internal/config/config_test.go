package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, models.SupportedBanks, cfg.TieBreakOrder)
	assert.Equal(t, 5, cfg.MaxFiles)
	assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
	for _, bank := range models.SupportedBanks {
		assert.NotEmpty(t, cfg.DetectionPatterns[bank], "bank %s has no detection patterns", bank)
	}
}

func TestLimitBounds(t *testing.T) {
	cfg := Default()

	axis := cfg.LimitBounds(models.BankAxis)
	require.NotNil(t, axis)
	assert.Equal(t, 10000.0, axis.Min)

	silk := cfg.LimitBounds(models.BankSilk)
	require.NotNil(t, silk)
	assert.Equal(t, 5000.0, silk.Min)
	assert.Equal(t, 10000000.0, silk.Max)

	assert.Nil(t, cfg.LimitBounds(models.BankHDFC))
	assert.Nil(t, cfg.LimitBounds(models.BankUnknown))
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := `
max_files: 10
detection_patterns:
  axis:
    - CUSTOM\s+AXIS
credit_limit_bounds:
  hdfc:
    min: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MaxFiles)
	assert.Equal(t, []string{`CUSTOM\s+AXIS`}, cfg.DetectionPatterns[models.BankAxis])
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.DetectionPatterns[models.BankCiti])
	assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
	assert.Equal(t, models.SupportedBanks, cfg.TieBreakOrder)

	hdfc := cfg.LimitBounds(models.BankHDFC)
	require.NotNil(t, hdfc)
	assert.Equal(t, 1000.0, hdfc.Min)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_files: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
