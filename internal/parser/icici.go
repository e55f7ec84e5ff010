package parser

import (
	"regexp"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// ICICI renders the rupee sign as a backtick in extracted text, so amounts
// look like `60,000.00. Due dates come written out ("September 5, 2022") and
// the PAYMENT DUE DATE banner extracts with every letter doubled.
const rupeeAmount = "`" + `(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

func iciciSpec(cfg *config.Config) *BankSpec {
	return &BankSpec{
		Bank: models.BankICICI,
		NameRules: []NameRule{
			// The salutation line; the title is part of the name as
			// printed, so the whole match is kept.
			{Pattern: regexp.MustCompile(`(?m)^(?:MR|MS|MRS|DR)\.?[ \t]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*)`), Group: 0},
		},
		TableRules: []TableRule{
			{
				Keywords: []string{"Credit Limit", "Including cash"},
				Header: []CellRule{
					{Field: "credit_limit", Kind: kindAmount, Cell: 0, StripPrefix: "`"},
				},
			},
			{
				Keywords: []string{"Total Amount due"},
				Rows: []RowRule{
					{Field: "total_due", Kind: kindAmount, Pattern: regexp.MustCompile(rupeeAmount), Group: 1},
				},
			},
			{
				Keywords: []string{"Payment Due Date"},
				Rows: []RowRule{
					{Field: "payment_due_date", Kind: kindDate, Pattern: regexp.MustCompile(`([A-Z][a-z]+\s+\d{1,2},\s+\d{4})`), Group: 1},
				},
			},
		},
		TextRules: map[string][]TextRule{
			"card_number": {
				{Pattern: regexp.MustCompile(`\b(\d{4}X{8}\d{4})\b`), Group: 1, Kind: kindCard},
			},
			"credit_limit": {
				{Pattern: regexp.MustCompile(`(?i)Credit\s+Limit\s+\(Including\s+cash\)[^\n]*\n[^\d]*?` + rupeeAmount), Group: 1, Kind: kindAmount},
			},
			"total_due": {
				{Pattern: regexp.MustCompile(`(?i)Total\s+Amount\s+due\s*\n[^\d]*?` + rupeeAmount), Group: 1, Kind: kindAmount},
			},
			"payment_due_date": {
				{Pattern: regexp.MustCompile(`(?i)P+A+Y+M+E+N+T+\s+D+U+E+\s+D+A+T+E+[^\n]*\n\s*([A-Z][a-z]+\s+\d{1,2},\s+\d{4})`), Group: 1, Kind: kindDate},
			},
		},
	}
}
