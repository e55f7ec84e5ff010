package parser

import (
	"regexp"
	"strings"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Label-anchored name patterns shared by the generic spec and the per-bank
// name fallback.
var genericNameRules = []NameRule{
	{Pattern: regexp.MustCompile(`(?i)(?:Cardholder['s]*\s*Name|Name\s*[:=])\s*([A-Z][A-Za-z\s]+)`), Group: 1, MaxLen: 50},
	{Pattern: regexp.MustCompile(`(?i)(?:Card\s*Name|Account\s*Name|Name\s*[:=])\s*([A-Z][A-Za-z\s]+)`), Group: 1, MaxLen: 50},
}

// Runs of 2-4 all-caps words, the usual rendering of holder names on Indian
// bank statements.
var capsNamePattern = regexp.MustCompile(`\b([A-Z][A-Z]+(?:\s+[A-Z][A-Z]+){1,3})\b`)

// genericCardholderName tries the label-anchored patterns, then falls back to
// the longest all-caps word run. Longest wins because abbreviations also
// match but names run longer.
func genericCardholderName(text string) string {
	for _, rule := range genericNameRules {
		if name := rule.apply(text); name != "" {
			return name
		}
	}

	var longest string
	for _, m := range capsNamePattern.FindAllStringSubmatch(text, -1) {
		if len(m[1]) > len(longest) {
			longest = m[1]
		}
	}
	if longest != "" && len(strings.Fields(longest)) <= 5 {
		return longest
	}
	return ""
}

// genericSpec is the bank-agnostic fallback used when detection comes back
// unknown. Pure text extraction; its patterns assume nothing about layout, so
// it ignores tables entirely.
func genericSpec() *BankSpec {
	return &BankSpec{
		Bank:     models.BankGeneric,
		PreClean: true,
		TextRules: map[string][]TextRule{
			"card_number": {
				{Pattern: regexp.MustCompile(`(?i)(?:Card\s*Number|Card\s*No\.|CC\s*No\.)[:\s]+([0-9X*\-\s]+)`), Group: 1, Kind: kindCard},
				{Pattern: regexp.MustCompile(`(\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4})`), Group: 1, Kind: kindCard},
				{Pattern: regexp.MustCompile(`(?i)(\d{4}[\s\-]?(?:[X*]{4}|0{4})[\s\-]?(?:[X*]{4}|0{4})[\s\-]?\d{4})`), Group: 1, Kind: kindCard},
			},
			"credit_limit": {
				{Pattern: regexp.MustCompile(`(?i)(?:Credit\s*Limit|Total\s*Credit\s*Limit)[:\s=]+(?:₹|Rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`), Group: 1, Kind: kindAmount},
				{Pattern: regexp.MustCompile(`(?i)(?:Credit\s*Limit)[:\s=]+(?:\$|€)?\s*([0-9,]+(?:\.[0-9]{2})?)`), Group: 1, Kind: kindAmount},
			},
			"total_due": {
				{Pattern: regexp.MustCompile(`(?i)(?:Total\s*(?:Amount|Payment)?\s*Due|Total\s*Dues)[:\s=]+(?:₹|Rs\.?)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?|\d+\.\d{2})`), Group: 1, Kind: kindAmount},
				{Pattern: regexp.MustCompile(`(?i)(?:Amount\s*Due|Total\s*Outstanding)[:\s=]+(?:\$|€|₹|Rs\.?)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?|\d+\.\d{2})`), Group: 1, Kind: kindAmount},
			},
			"payment_due_date": {
				{Pattern: regexp.MustCompile(`(?i)(?:Payment\s*)?Due\s*Date[:\s=]+([0-9/\-A-Za-z]+)`), Group: 1, Kind: kindDate},
			},
		},
	}
}
