package writer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

func sampleRecords() []models.StatementRecord {
	return []models.StatementRecord{
		{
			Bank:     models.BankAxis,
			Filename: "axis.pdf",
			Status:   models.StatusSuccess,
			Fields: models.Fields{
				CardholderName: "PATNALA VINOD KUMAR",
				CardNumber:     "7381",
				CreditLimit:    "132,000.00",
				TotalDue:       "78,708.38",
				PaymentDueDate: "2021-11-04",
			},
		},
		{
			Bank:     models.BankHDFC,
			Filename: "hdfc.pdf",
			Status:   models.StatusPartial,
			Fields:   models.Fields{CardholderName: "NIKHIL KHANDELWAL"},
			Errors:   []string{"Missing field: card_number", "Missing field: total_due"},
		},
		{
			Bank:         models.BankUnknown,
			Filename:     "garbled.pdf",
			Status:       models.StatusError,
			ErrorMessage: "no readable text extracted",
		},
	}
}

func TestJSONWriterEnvelope(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	require.NoError(t, w.Write(&buf, sampleRecords()))

	var doc struct {
		TotalRecords int              `json:"total_records"`
		Statements   []map[string]any `json:"statements"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 3, doc.TotalRecords)
	require.Len(t, doc.Statements, 3)
	assert.Equal(t, "axis", doc.Statements[0]["bank"])
	assert.Equal(t, "78,708.38", doc.Statements[0]["total_due"])
	assert.NotContains(t, doc.Statements[2], "cardholder_name")
	assert.Equal(t, "no readable text extracted", doc.Statements[2]["error_message"])
}

func TestJSONWriterToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parsed_data.json")
	w := &JSONWriter{}
	require.NoError(t, w.WriteToFile(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 3, doc.TotalRecords)
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"axis", "axis.pdf",
		"PATNALA VINOD KUMAR", "7381", "132,000.00", "78,708.38", "2021-11-04",
		models.StatusSuccess, "", "",
	}, rows[1])
	assert.Equal(t, "Missing field: card_number; Missing field: total_due", rows[2][8])
	assert.Equal(t, "no readable text extracted", rows[3][9])
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 1, s.Successful)
	assert.Equal(t, 1, s.Partial)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, "33.33%", s.SuccessRate)
	assert.Equal(t, BankStats{Success: 1}, s.ByBank[models.BankAxis])
	assert.Equal(t, BankStats{Partial: 1}, s.ByBank[models.BankHDFC])
	assert.Equal(t, BankStats{Error: 1}, s.ByBank[models.BankUnknown])
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalRecords)
	assert.Equal(t, "0%", s.SuccessRate)
	assert.Empty(t, s.ByBank)
}

func TestSummaryPrint(t *testing.T) {
	var buf bytes.Buffer
	Summarize(sampleRecords()).Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "PARSING SUMMARY")
	assert.Contains(t, out, "Total Records:   3")
	assert.Contains(t, out, "Success Rate:    33.33%")
	assert.Contains(t, out, "AXIS:")
	assert.Contains(t, out, "UNKNOWN:")
}
