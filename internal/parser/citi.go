package parser

import (
	"regexp"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Citi statements render the cardholder name as one concatenated all-caps
// token on the line after the spaced-out card number, followed by an address
// line. The summary tables use shouting-caps labels with the value row
// underneath (credit limit) or on the label row itself (total due, due date).
func citiSpec(cfg *config.Config) *BankSpec {
	bounds := cfg.LimitBounds(models.BankCiti)

	return &BankSpec{
		Bank: models.BankCiti,
		NameRules: []NameRule{
			{Pattern: regexp.MustCompile(`\*\s*[\d\s]+\s*C\*[^\n]*\n([A-Z]{15,})\n(?:DEP-|[A-Z]{2,}-)`), Group: 1, MinTokens: 1},
			{Pattern: regexp.MustCompile(`\n([A-Z]{15,})\n(?:DEP-ED|AT/PO|POBLACION)`), Group: 1, MinTokens: 1},
			{Pattern: regexp.MustCompile(`C\*[^\n]*\n([A-Z\s]{10,50}?)\n[A-Z]{2,}-[A-Z]`), Group: 1, MinTokens: 1},
		},
		TableRules: []TableRule{
			{
				Keywords: []string{"ACCOUNT", "CREDIT LIMIT"},
				Header: []CellRule{
					// First column under the header is the account limit;
					// the band rejects the cash-advance sublimits.
					{Field: "credit_limit", Kind: kindAmount, Cell: 0, Bounds: bounds},
				},
			},
			{
				Keywords: []string{"TOTAL AMOUNT DUE"},
				Rows: []RowRule{
					// The (=) TOTAL AMOUNT DUE row lists the balance
					// arithmetic; the due amount is the final figure.
					{Field: "total_due", Kind: kindAmount, Pattern: amountPattern, TakeLast: true},
				},
			},
			{
				Keywords: []string{"Payment Due Date"},
				Rows: []RowRule{
					{Field: "payment_due_date", Kind: kindDate, Pattern: regexp.MustCompile(`(\d{2}/\d{2}/\d{2,4})`), Group: 1},
				},
			},
			{
				Keywords: []string{"Card Number"},
				Scan: []RowRule{
					{Field: "card_number", Kind: kindCard, Pattern: regexp.MustCompile(`(\d{4})-(\d{4})-(\d{4})-(\d{4})`), Group: 4, CellScan: true},
				},
			},
		},
		TextRules: map[string][]TextRule{
			"card_number": {
				{Pattern: regexp.MustCompile(`(?i)CardNumber\s*:\s*(\d{4})-(\d{4})-(\d{4})-(\d{4})`), Group: 4, Kind: kindCard},
			},
			"credit_limit": {
				{Pattern: regexp.MustCompile(`(?i)ACCOUNT[^\n]*?CREDIT\s*LIMIT[^\n]*?\n\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 1, Kind: kindAmount, Bounds: bounds},
				// Several sublimits share the CREDIT LIMIT label; scan
				// until one clears the band.
				{Pattern: regexp.MustCompile(`(?i)CREDIT\s*LIMIT[^\d]*?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 1, Kind: kindAmount, Bounds: bounds, ScanAll: true},
			},
			"total_due": {
				{Pattern: regexp.MustCompile(`(?i)TotalAmountDue\s*\(\s*\)\s*:\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 1, Kind: kindAmount},
			},
			"payment_due_date": {
				{Pattern: regexp.MustCompile(`(?i)PaymentDueDate\s*:\s*(\d{2}/\d{2}/\d{2,4})`), Group: 1, Kind: kindDate},
			},
		},
	}
}
