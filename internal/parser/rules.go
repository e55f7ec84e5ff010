package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
	"github.com/OmMakwana02/CreditCardParser/internal/textutil"
)

// valueKind selects how a matched value is post-processed before it is
// accepted into a field.
type valueKind int

const (
	kindAmount     valueKind = iota // decimal-formatted amount, optional bounds
	kindDate                        // normalized to ISO via the date cascade
	kindCard                        // any card rendering, reduced to last 4 digits
	kindLabeledCard                 // cell carrying a "Card No" style label
)

// amountPattern matches decimal-formatted amounts with thousands separators.
var amountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

// inBounds applies a plausibility band to a candidate amount. Amounts that
// fail to parse are implausible by definition.
func inBounds(amount string, bounds *config.Bounds) bool {
	if bounds == nil {
		return true
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(amount, ",", ""))
	if err != nil {
		return false
	}
	if bounds.Min > 0 && v.LessThanOrEqual(decimal.NewFromFloat(bounds.Min)) {
		return false
	}
	if bounds.Max > 0 && v.GreaterThanOrEqual(decimal.NewFromFloat(bounds.Max)) {
		return false
	}
	return true
}

// TextRule is one step of a field's text-regex cascade.
type TextRule struct {
	Pattern *regexp.Regexp
	Group   int // capture group holding the value; 0 = whole match
	Kind    valueKind
	Bounds  *config.Bounds
	// ScanAll retries every match of Pattern until one passes the bounds
	// check, instead of judging only the first.
	ScanAll bool
}

// apply runs the rule against raw text and returns the accepted value, or ""
// on a miss. A miss is an expected outcome and never an error.
func (r TextRule) apply(text string) string {
	matches := [][]string{}
	if r.ScanAll {
		matches = r.Pattern.FindAllStringSubmatch(text, -1)
	} else if m := r.Pattern.FindStringSubmatch(text); m != nil {
		matches = append(matches, m)
	}
	for _, m := range matches {
		if r.Group >= len(m) {
			continue
		}
		if v := r.accept(strings.TrimSpace(m[r.Group])); v != "" {
			return v
		}
	}
	return ""
}

func (r TextRule) accept(raw string) string {
	switch r.Kind {
	case kindAmount:
		if !inBounds(raw, r.Bounds) {
			return ""
		}
		return raw
	case kindDate:
		return textutil.NormalizeDate(raw)
	case kindCard, kindLabeledCard:
		return textutil.LastFourDigits(raw)
	}
	return raw
}

// CellRule extracts one field from the data row found under a matched
// header row.
type CellRule struct {
	Field string
	Kind  valueKind
	// Cell restricts the rule to a fixed data-row column; -1 scans cells.
	Cell int
	// Match gates (and for date/card kinds, captures) the cell value.
	Match  *regexp.Regexp
	Bounds *config.Bounds
	// StripPrefix is removed from the cell before matching (the ICICI
	// rupee backtick).
	StripPrefix string
	// Overwrite lets a later cell replace an earlier hit. Needed where a
	// data row carries two look-alike values and the rightmost is the one
	// wanted, like Silk's statement date followed by the due date.
	Overwrite bool
}

// RowRule extracts a field from any row whose flattened text contains the
// parent rule's keywords.
type RowRule struct {
	Field   string
	Kind    valueKind
	Pattern *regexp.Regexp
	Group   int
	// TakeLast accepts the final candidate in the row instead of the first.
	TakeLast bool
	Bounds   *config.Bounds
	// CellScan applies Pattern to individual cells rather than the
	// flattened row text.
	CellScan bool
	// NextRowCells falls back to the following row's cells when the
	// matching row itself carries no acceptable value.
	NextRowCells bool
}

// TableRule binds a set of header keywords to the extraction rules for the
// table layout those keywords identify.
type TableRule struct {
	// Keywords gate the rule: all must occur in the table's flattened text.
	Keywords []string
	// HeaderKeywords locate the header row; defaults to Keywords.
	HeaderKeywords []string
	// Header rules run against the row following the header row.
	Header []CellRule
	// Rows rules run against every row containing Keywords.
	Rows []RowRule
	// Scan rules run against every row of the table, keywords or not.
	Scan []RowRule
}

func (tr TableRule) headerKeywords() []string {
	if len(tr.HeaderKeywords) > 0 {
		return tr.HeaderKeywords
	}
	return tr.Keywords
}

// apply extracts whatever the rule recognizes in table, filling only fields
// that are still empty in found.
func (tr TableRule) apply(table models.Table, found *models.Fields) {
	if !containsAll(table.Flatten(), tr.Keywords) {
		return
	}
	if len(tr.Header) > 0 {
		tr.applyHeader(table, found)
	}
	if len(tr.Rows) > 0 {
		tr.applyRows(table, found)
	}
	if len(tr.Scan) > 0 {
		tr.applyScan(table, found)
	}
}

func (tr TableRule) applyHeader(table models.Table, found *models.Fields) {
	headerIdx := FindHeaderRow(table, tr.headerKeywords())
	dataRow := DataRowAfter(table, headerIdx)
	if dataRow == nil {
		return
	}

	for cellIdx, cell := range dataRow {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		// First matching rule consumes the cell.
		for _, rule := range tr.Header {
			if rule.Cell >= 0 && rule.Cell != cellIdx {
				continue
			}
			if !rule.Overwrite && found.Get(rule.Field) != "" {
				continue
			}
			if v := rule.extract(cell); v != "" {
				found.Set(rule.Field, v)
				break
			}
		}
	}
}

func (r CellRule) extract(cell string) string {
	if r.StripPrefix != "" {
		cell = strings.TrimSpace(strings.TrimPrefix(cell, r.StripPrefix))
	}
	switch r.Kind {
	case kindAmount:
		if r.Match != nil && !r.Match.MatchString(cell) {
			return ""
		}
		amount := amountPattern.FindString(cell)
		if amount == "" || !inBounds(amount, r.Bounds) {
			return ""
		}
		return amount
	case kindDate:
		if r.Match == nil {
			return ""
		}
		return textutil.NormalizeDate(r.Match.FindString(cell))
	case kindCard:
		if r.Match == nil || !r.Match.MatchString(cell) {
			return ""
		}
		return textutil.LastFourDigits(r.Match.FindString(cell))
	}
	return ""
}

// labeledCardDigits pulls the last-4 group out of cells like
// "Card No: 4695 25XX XXXX 3458".
var labeledCardDigits = regexp.MustCompile(`(\d{4})(?:\s|$)`)

func (tr TableRule) applyRows(table models.Table, found *models.Fields) {
	for idx, row := range table {
		flat := models.FlattenRow(row)
		if !containsAll(flat, tr.Keywords) {
			continue
		}
		for _, rule := range tr.Rows {
			if found.Get(rule.Field) != "" {
				continue
			}
			if v := rule.extract(table, idx, flat); v != "" {
				found.Set(rule.Field, v)
			}
		}
	}
}

func (tr TableRule) applyScan(table models.Table, found *models.Fields) {
	for idx, row := range table {
		flat := models.FlattenRow(row)
		for _, rule := range tr.Scan {
			if found.Get(rule.Field) != "" {
				continue
			}
			if v := rule.extract(table, idx, flat); v != "" {
				found.Set(rule.Field, v)
			}
		}
	}
}

func (r RowRule) extract(table models.Table, rowIdx int, flat string) string {
	if r.CellScan {
		for _, cell := range table[rowIdx] {
			if r.Kind == kindLabeledCard {
				// The label and the masked number share a cell; the
				// trailing 4-digit group is the unmasked tail.
				if r.Pattern.MatchString(cell) {
					if all := labeledCardDigits.FindAllStringSubmatch(cell, -1); len(all) > 0 {
						return all[len(all)-1][1]
					}
				}
				continue
			}
			if m := r.Pattern.FindStringSubmatch(cell); m != nil && r.Group < len(m) {
				if v := (TextRule{Kind: r.Kind, Bounds: r.Bounds}).accept(m[r.Group]); v != "" {
					return v
				}
			}
		}
		return ""
	}

	matches := r.Pattern.FindAllStringSubmatch(flat, -1)
	if r.TakeLast {
		for i := len(matches) - 1; i >= 0; i-- {
			if v := r.acceptMatch(matches[i]); v != "" {
				return v
			}
		}
	} else {
		for _, m := range matches {
			if v := r.acceptMatch(m); v != "" {
				return v
			}
		}
	}

	if r.NextRowCells && rowIdx+1 < len(table) {
		for _, cell := range table[rowIdx+1] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			amount := amountPattern.FindString(cell)
			if amount != "" && inBounds(amount, r.Bounds) {
				return amount
			}
		}
	}
	return ""
}

func (r RowRule) acceptMatch(m []string) string {
	if r.Group >= len(m) {
		return ""
	}
	return TextRule{Kind: r.Kind, Bounds: r.Bounds}.accept(strings.TrimSpace(m[r.Group]))
}
