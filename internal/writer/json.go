// Package writer serializes extraction results to their output formats.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Document is the JSON output envelope.
type Document struct {
	TotalRecords int                      `json:"total_records"`
	Statements   []models.StatementRecord `json:"statements"`
}

// JSONWriter writes statement records as a pretty-printed JSON document.
type JSONWriter struct{}

// WriteToFile writes records to a JSON file at the given path.
func (w *JSONWriter) WriteToFile(path string, records []models.StatementRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, records)
}

// Write writes records in JSON format to the given writer.
func (w *JSONWriter) Write(out io.Writer, records []models.StatementRecord) error {
	doc := Document{
		TotalRecords: len(records),
		Statements:   records,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
