package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// CSVWriter writes statement records to CSV format, one record per row.
type CSVWriter struct{}

// csvHeader fixes the column order: identity, the five extracted fields,
// then outcome columns.
var csvHeader = []string{
	"bank",
	"filename",
	"cardholder_name",
	"card_number",
	"credit_limit",
	"total_due",
	"payment_due_date",
	"status",
	"errors",
	"error_message",
}

// WriteToFile writes records to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, records []models.StatementRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, records)
}

// Write writes records in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, records []models.StatementRecord) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			string(rec.Bank),
			rec.Filename,
			rec.CardholderName,
			rec.CardNumber,
			rec.CreditLimit,
			rec.TotalDue,
			rec.PaymentDueDate,
			rec.Status,
			strings.Join(rec.Errors, "; "),
			rec.ErrorMessage,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}
