package parser

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Contract wraps a strategy with the outcome guarantee callers rely on:
// Parse always returns a usable record and never panics. A document where
// every field extracted is a success, anything less is partial, and an
// unexpected failure comes back as an error record rather than taking down
// the batch.
type Contract struct {
	strategy *Strategy
	log      zerolog.Logger
}

// NewContract wraps strategy.
func NewContract(strategy *Strategy, log zerolog.Logger) *Contract {
	return &Contract{strategy: strategy, log: log}
}

// Bank returns the bank this contract parses.
func (c *Contract) Bank() models.Bank {
	return c.strategy.Bank()
}

// Parse extracts the five statement fields from text and tables and
// classifies the outcome.
func (c *Contract) Parse(text, filename string, tables []models.Table) (rec models.StatementRecord) {
	bank := c.strategy.Bank()
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Str("bank", string(bank)).Str("filename", filename).
				Interface("panic", r).Msg("statement parse panicked")
			rec = models.StatementRecord{
				Bank:         bank,
				Filename:     filename,
				Status:       models.StatusError,
				ErrorMessage: fmt.Sprintf("%v", r),
			}
		}
	}()

	c.log.Info().Str("bank", string(bank)).Str("filename", filename).Msg("parsing statement")

	rec = models.StatementRecord{Bank: bank, Filename: filename, Status: models.StatusSuccess}

	fields, err := c.strategy.Extract(text, tables)
	if err != nil {
		c.log.Error().Err(err).Str("bank", string(bank)).Msg("statement parse failed")
		rec.Status = models.StatusError
		rec.ErrorMessage = err.Error()
		return rec
	}

	rec.Fields = fields
	if errs := fieldErrors(fields); len(errs) > 0 {
		c.log.Warn().Str("bank", string(bank)).Strs("errors", errs).Msg("incomplete extraction")
		rec.Status = models.StatusPartial
		rec.Errors = errs
	}
	return rec
}

// fieldErrors reports, per output field, whether it was never extracted or
// extracted blank.
func fieldErrors(f models.Fields) []string {
	var errs []string
	for _, name := range models.FieldNames {
		v := f.Get(name)
		switch {
		case v == "":
			errs = append(errs, "Missing field: "+name)
		case strings.TrimSpace(v) == "":
			errs = append(errs, "Empty field: "+name)
		}
	}
	return errs
}
