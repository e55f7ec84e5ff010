package parser

import (
	"regexp"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Axis statements carry two summary tables: a payment summary whose data row
// mixes "Dr"-suffixed amounts with dates, and a credit-details table pairing
// the masked card number with the limit. Cell order varies between layouts,
// so cells are recognized by shape rather than position.
func axisSpec(cfg *config.Config) *BankSpec {
	bounds := cfg.LimitBounds(models.BankAxis)

	return &BankSpec{
		Bank: models.BankAxis,
		NameRules: []NameRule{
			{Pattern: regexp.MustCompile(`Name\s+([A-Z][A-Z\s]+?)(?:\n|$)`), Group: 1},
		},
		TableRules: []TableRule{
			{
				Keywords: []string{"Total Payment Due", "Payment Due Date"},
				Header: []CellRule{
					// Amounts carry a Dr suffix; the total is the first.
					{Field: "total_due", Kind: kindAmount, Cell: -1, Match: regexp.MustCompile(`Dr`)},
					// The statement-period cell is a date range, so the
					// full-cell anchor keeps it out.
					{Field: "payment_due_date", Kind: kindDate, Cell: -1, Match: regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)},
				},
			},
			{
				Keywords: []string{"Credit Card Number", "Credit Limit"},
				Header: []CellRule{
					{Field: "card_number", Kind: kindCard, Cell: -1, Match: regexp.MustCompile(`^\d{6}\*+\d{4}`)},
					{Field: "credit_limit", Kind: kindAmount, Cell: -1, Bounds: bounds},
				},
			},
		},
		TextRules: map[string][]TextRule{
			"card_number": {
				{Pattern: regexp.MustCompile(`(?i)(?:Card\s+No:?\s+)?(\d{6}\*+\d{4})`), Group: 1, Kind: kindCard},
				{Pattern: regexp.MustCompile(`(?i)Credit\s+Card\s+Number\s+.*?\s+(\d{6}\*+\d{4})`), Group: 1, Kind: kindCard},
			},
			"credit_limit": {
				// The limit is the first of three amounts following the
				// masked card number on the credit-details line.
				{Pattern: regexp.MustCompile(`\d{6}\*+\d{4}\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+(?:\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+(?:\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 1, Kind: kindAmount, Bounds: bounds},
			},
			"total_due": {
				{Pattern: regexp.MustCompile(`(?is)Total\s+Payment\s+Due\s+Minimum\s+Payment\s+Due.*?\n\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+Dr`), Group: 1, Kind: kindAmount},
				{Pattern: regexp.MustCompile(`(?is)Total\s+Payment\s+Due[^\d]*?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+Dr`), Group: 1, Kind: kindAmount},
			},
			"payment_due_date": {
				{Pattern: regexp.MustCompile(`(?i)Payment\s+Due\s+Date[^\d]*?(\d{2}/\d{2}/\d{4})`), Group: 1, Kind: kindDate},
			},
		},
	}
}
