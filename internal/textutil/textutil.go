// Package textutil holds bank-agnostic text, amount, and date normalization
// used by every extraction strategy.
package textutil

import (
	"regexp"
	"strings"
	"time"
)

var (
	// Page markers inserted by the PDF extractor, e.g. "--- Page 1 ---".
	pageMarkerPattern = regexp.MustCompile(`(?i)---\s*Page\s*\d+\s*---`)
	// Runs of spaces and tabs (newlines are preserved separately).
	spaceRunPattern = regexp.MustCompile(`[ \t]+`)
	// Collapsed blank-line runs.
	blankLinePattern = regexp.MustCompile(`\n\n+`)

	// Currency markers seen on real statements: rupee/dollar/euro signs and
	// the "Rs."/"Rs" prefix.
	currencyPattern = regexp.MustCompile(`₹|\$|€|Rs\.?|\s`)
	digitPattern    = regexp.MustCompile(`\d`)
)

// CleanText strips page markers and collapses whitespace runs.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = pageMarkerPattern.ReplaceAllString(text, "")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = blankLinePattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// NormalizeWhitespace trims every line and drops blank ones.
func NormalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, "\n")
}

// CleanAmount strips currency symbols and whitespace from an amount string,
// keeping digits, commas, and a single decimal point. Returns "" when
// nothing numeric remains.
func CleanAmount(amount string) string {
	if amount == "" {
		return ""
	}
	cleaned := currencyPattern.ReplaceAllString(amount, "")

	var b strings.Builder
	seenPoint := false
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9', r == ',':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dateLayouts are tried in order; the first successful parse wins. Ambiguous
// inputs like 03/04/2020 therefore resolve day-first, by cascade order alone.
var dateLayouts = []string{
	"2/1/2006",        // 04/11/2021
	"2-1-2006",        // 04-11-2021
	"1/2/2006",        // 11/04/2021 (US)
	"1-2-2006",        // 11-04-2021 (US)
	"2/1/06",          // 04/11/21
	"2-1-06",          // 04-11-21
	"1/2/06",          // 11/04/21 (US)
	"2-Jan-2006",      // 10-Apr-2018
	"2-Jan-06",        // 10-Apr-18
	"January 2, 2006", // April 10, 2018
	"Jan 2, 2006",     // Apr 10, 2018
}

// NormalizeDate converts a date string in any of the recognized formats to
// ISO YYYY-MM-DD. Returns "" for unrecognized input.
func NormalizeDate(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// LastFourDigits returns the trailing 4 digit characters of a card number in
// any masking style, or "" when fewer than 4 digits are present.
func LastFourDigits(cardNumber string) string {
	digits := digitPattern.FindAllString(cardNumber, -1)
	if len(digits) < 4 {
		return ""
	}
	return strings.Join(digits[len(digits)-4:], "")
}
