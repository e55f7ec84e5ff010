package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/logger"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := New(config.Default(), logger.Nop())
	require.NoError(t, err)
	return d
}

func TestDetect(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name string
		text string
		want models.Bank
	}{
		{
			"axis statement",
			"AXIS BANK Credit Card Statement\nwww.axisbank.com\nTotal Payment Due",
			models.BankAxis,
		},
		{
			"hdfc statement",
			"HDFC BANK LTD\nStatement for HDFC Credit Card\nwww.hdfcbank.com",
			models.BankHDFC,
		},
		{
			"citi statement",
			"Citibank N.A.\nCITIBANK N.A. Statement of Account",
			models.BankCiti,
		},
		{
			"icici statement",
			"ICICI Bank Limited www.icicibank.com",
			models.BankICICI,
		},
		{
			"silk statement",
			"Silk Bank Credit Card\nSILKBANK LIMITED",
			models.BankSilk,
		},
		{
			"no bank markers",
			"A completely unrelated document about gardening",
			models.BankUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestDetectHighestScoreWins(t *testing.T) {
	d := newDetector(t)

	text := "AXIS BANK statement. AXIS BANK contact. AXIS BANK address. HDFC Bank mention."
	assert.Equal(t, models.BankAxis, d.Detect(text))
}

func TestDetectEmptyText(t *testing.T) {
	d := newDetector(t)

	bank, confidence := d.DetectWithConfidence("   \n\t ")
	assert.Equal(t, models.BankUnknown, bank)
	assert.Zero(t, confidence)
}

func TestDetectConfidenceRange(t *testing.T) {
	d := newDetector(t)

	_, confidence := d.DetectWithConfidence("AXIS BANK AXIS BANK AXIS BANK www.axisbank.com Axis Credit Card")
	assert.Greater(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
}

// Equal scores must resolve by the fixed priority order, every time.
func TestDetectTieBreakDeterministic(t *testing.T) {
	d := newDetector(t)

	// One detection hit each for axis and icici.
	text := "AXIS BANK and ICICI BANK appear once"
	for i := 0; i < 50; i++ {
		assert.Equal(t, models.BankAxis, d.Detect(text))
	}
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	cfg := config.Default()
	cfg.DetectionPatterns[models.BankAxis] = []string{`([unclosed`}

	_, err := New(cfg, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "axis")
}
