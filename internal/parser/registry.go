// Package parser extracts the five key fields from credit card statement
// text and tables. Per-bank behavior lives in data-driven rule specs executed
// by a single strategy; the registry hands out a parser contract per detected
// bank, with a generic text-only fallback for everything else.
package parser

import (
	"github.com/rs/zerolog"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Registry maps detected banks to their parser contracts. Build one at
// startup and share it; lookups are read-only.
type Registry struct {
	contracts map[models.Bank]*Contract
	fallback  *Contract
}

// NewRegistry builds contracts for every supported bank plus the generic
// fallback.
func NewRegistry(cfg *config.Config, log zerolog.Logger) *Registry {
	specs := []*BankSpec{
		axisSpec(cfg),
		citiSpec(cfg),
		hdfcSpec(cfg),
		iciciSpec(cfg),
		silkSpec(cfg),
	}

	r := &Registry{contracts: make(map[models.Bank]*Contract, len(specs))}
	for _, spec := range specs {
		r.contracts[spec.Bank] = NewContract(NewStrategy(spec, log), log)
	}
	r.fallback = NewContract(NewStrategy(genericSpec(), log), log)
	return r
}

// Contract returns the parser for bank. Banks without dedicated rules,
// including unknown, get the generic fallback.
func (r *Registry) Contract(bank models.Bank) *Contract {
	if c, ok := r.contracts[bank]; ok {
		return c
	}
	return r.fallback
}

// Banks lists the banks with dedicated contracts, in tie-break order.
func (r *Registry) Banks() []models.Bank {
	return models.SupportedBanks
}
