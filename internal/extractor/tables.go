package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// LoadTables reads the table sidecar for a PDF, if one exists. Table
// detection needs cell geometry that plain text extraction does not recover,
// so tables arrive as a pre-extracted "<name>.tables.json" file next to the
// statement: an array of tables, each an array of rows of cell strings.
// JSON nulls decode as empty cells.
//
// A missing sidecar is normal and returns no tables; the parsers fall back
// to their text cascades.
func LoadTables(pdfPath string) ([]models.Table, error) {
	sidecar := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".tables.json"

	data, err := os.ReadFile(sidecar)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading table sidecar: %w", err)
	}

	var tables []models.Table
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing table sidecar %s: %w", filepath.Base(sidecar), err)
	}
	return tables, nil
}

// ParseTables decodes table data in the sidecar format from raw bytes, as
// uploaded alongside a statement.
func ParseTables(data []byte) ([]models.Table, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var tables []models.Table
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing table data: %w", err)
	}
	return tables, nil
}
