package parser

import (
	"regexp"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Silk statements open with a header table (name, full card number,
// statement date, payment due date) and summarize balances in label rows
// whose value sometimes lands on the following row.
func silkSpec(cfg *config.Config) *BankSpec {
	bounds := cfg.LimitBounds(models.BankSilk)

	return &BankSpec{
		Bank: models.BankSilk,
		NameRules: []NameRule{
			{Pattern: regexp.MustCompile(`(?i)Cardholder'?s?\s+Name[^\n]*\n\s*([A-Z][A-Z\s]+?)\s+\d{4}`), Group: 1},
		},
		TableRules: []TableRule{
			{
				Keywords: []string{"Cardholder", "Card Number"},
				Header: []CellRule{
					{Field: "card_number", Kind: kindCard, Cell: -1, Match: regexp.MustCompile(`^\d{4}\s+\d{4}\s+\d{4}\s+\d{4}`)},
					// Statement date and payment due date share the
					// format; the due date is the later column.
					{Field: "payment_due_date", Kind: kindDate, Cell: -1, Match: regexp.MustCompile(`^\d{2}-[A-Z][a-z]{2}-\d{4}`), Overwrite: true},
				},
			},
			{
				Keywords: []string{"Credit Limit"},
				Rows: []RowRule{
					{Field: "credit_limit", Kind: kindAmount, Pattern: amountPattern, Bounds: bounds, NextRowCells: true},
				},
			},
			{
				Keywords: []string{"Current Balance"},
				Rows: []RowRule{
					{Field: "total_due", Kind: kindAmount, Pattern: amountPattern, TakeLast: true, NextRowCells: true},
				},
			},
		},
		TextRules: map[string][]TextRule{
			"card_number": {
				{Pattern: regexp.MustCompile(`(?i)Card\s+Number[^\n]*\n[^\d]*?(\d{4})\s+(\d{4})\s+(\d{4})\s+(\d{4})`), Group: 4, Kind: kindCard},
			},
			"credit_limit": {
				// Limit follows the full card number on the summary line.
				{Pattern: regexp.MustCompile(`(\d{4})\s+(\d{4})\s+(\d{4})\s+(\d{4})\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 5, Kind: kindAmount, Bounds: bounds},
			},
			"total_due": {
				{Pattern: regexp.MustCompile(`(?i)=\s*Current\s+Balance\s*\n[^\d]*?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 1, Kind: kindAmount},
			},
			"payment_due_date": {
				{Pattern: regexp.MustCompile(`(?i)Statement\s+Date\s+Payment\s+Due\s+Date[^\n]*\n[^\d]*?\d{4}\s+(\d{2}-[A-Z][a-z]{2}-\d{4})\s+(\d{2}-[A-Z][a-z]{2}-\d{4})`), Group: 2, Kind: kindDate},
			},
		},
	}
}
