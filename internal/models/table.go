package models

import "strings"

// Table is an ordered sequence of rows extracted from a statement PDF.
// Cells may be empty where the table extractor reported no value; a JSON
// null cell unmarshals to the empty string.
type Table [][]string

// FlattenRow joins the non-empty cells of a row with single spaces.
func FlattenRow(row []string) string {
	var parts []string
	for _, cell := range row {
		if cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}

// Flatten joins every row's flattened text with spaces, giving a single
// searchable string for header keyword matching.
func (t Table) Flatten() string {
	var parts []string
	for _, row := range t {
		if s := FlattenRow(row); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
