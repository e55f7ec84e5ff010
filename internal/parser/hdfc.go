package parser

import (
	"regexp"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// HDFC text extraction comes out jumbled: the letterhead interleaves with the
// holder name, leaving fragments like "Ban e k Credit Ca : rd NIKHIL
// KHANDELWAL Statement". The name cascade works through progressively looser
// anchors around that mess. Tables are clean header-over-value pairs.
func hdfcSpec(cfg *config.Config) *BankSpec {
	return &BankSpec{
		Bank: models.BankHDFC,
		NameRules: []NameRule{
			{Pattern: regexp.MustCompile(`[Nn]ame\s*:\s*([A-Z][A-Z\s]+?)(?:\s+Statement)`), Group: 1, MinWordLen: 2},
			{Pattern: regexp.MustCompile(`rd\s*:\s*([A-Z][A-Z\s]+?)\s+Statement`), Group: 1},
			{Pattern: regexp.MustCompile(`(?i)000.*?rd[^A-Z]*([A-Z]+\s+[A-Z]+)\s+Statement`), Group: 1},
			{Pattern: regexp.MustCompile(`\b([A-Z]{3,}\s+[A-Z]{3,}(?:\s+[A-Z]{3,})?)\s+Statement\s+for\s+HDFC`), Group: 1},
		},
		TableRules: []TableRule{
			{
				Keywords: []string{"Payment Due Date", "Total Dues"},
				Header: []CellRule{
					{Field: "payment_due_date", Kind: kindDate, Cell: -1, Match: regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)},
					// Total dues precedes minimum due in the row, so the
					// first plain amount wins.
					{Field: "total_due", Kind: kindAmount, Cell: -1, Match: regexp.MustCompile(`^\d{1,3}(?:,\d{3})*(?:\.\d{2})?$`)},
				},
			},
			{
				Keywords:       []string{"Credit Limit", "Available Credit"},
				HeaderKeywords: []string{"Credit Limit"},
				Header: []CellRule{
					{Field: "credit_limit", Kind: kindAmount, Cell: 0},
				},
			},
			{
				Keywords: []string{"Card No"},
				Scan: []RowRule{
					{Field: "card_number", Kind: kindLabeledCard, Pattern: regexp.MustCompile(`Card\s*No`), CellScan: true},
				},
			},
		},
		// No text cascade exists for the card number; outside tables the
		// masked number is lost in the jumbled text.
		TextRules: map[string][]TextRule{
			"credit_limit": {
				{Pattern: regexp.MustCompile(`(?i)Credit\s+Limit\s+Available\s+Credit\s+Limit[^\n]*\n[^\d]*?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 1, Kind: kindAmount},
			},
			"total_due": {
				{Pattern: regexp.MustCompile(`(?i)Payment\s+Due\s+Date\s+Total\s+Dues\s+Minimum\s+Amount\s+Due[^\n]*\n[^\d]*?(\d{2}/\d{2}/\d{4})\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Group: 2, Kind: kindAmount},
			},
			"payment_due_date": {
				{Pattern: regexp.MustCompile(`(?i)Payment\s+Due\s+Date\s+Total\s+Dues[^\n]*\n[^\d]*?(\d{2}/\d{2}/\d{4})`), Group: 1, Kind: kindDate},
			},
		},
	}
}
