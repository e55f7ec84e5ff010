package parser

import (
	"strings"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// headerScanRows limits how many leading rows are examined when locating a
// table by its header keywords. Statement tables carry their labels at the
// top; deeper matches are almost always data noise.
const headerScanRows = 3

// containsAll reports whether every keyword occurs in text,
// case-insensitively.
func containsAll(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// FindHeaderRow returns the index of the first row whose flattened text
// contains all keywords, or -1 when no row qualifies.
func FindHeaderRow(table models.Table, keywords []string) int {
	for idx, row := range table {
		if containsAll(models.FlattenRow(row), keywords) {
			return idx
		}
	}
	return -1
}

// DataRowAfter returns the row immediately following the header row, or nil
// when the header is the final row. A trailing header is a normal no-data
// outcome, never an error.
func DataRowAfter(table models.Table, headerIdx int) []string {
	if headerIdx < 0 || headerIdx+1 >= len(table) {
		return nil
	}
	return table[headerIdx+1]
}

// FindTableWithHeader returns the first table whose leading rows contain all
// keywords, or nil.
func FindTableWithHeader(tables []models.Table, keywords []string) models.Table {
	for _, table := range tables {
		if len(table) == 0 {
			continue
		}
		limit := len(table)
		if limit > headerScanRows {
			limit = headerScanRows
		}
		for _, row := range table[:limit] {
			if containsAll(models.FlattenRow(row), keywords) {
				return table
			}
		}
	}
	return nil
}
