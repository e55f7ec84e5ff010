package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "statement.pdf")

	// No sidecar: not an error, just no tables.
	tables, err := LoadTables(pdfPath)
	require.NoError(t, err)
	assert.Nil(t, tables)

	sidecar := filepath.Join(dir, "statement.tables.json")
	require.NoError(t, os.WriteFile(sidecar, []byte(`[[["Credit Limit", null], ["30,000", "0.00"]]]`), 0o644))

	tables, err = LoadTables(pdfPath)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, models.Table{{"Credit Limit", ""}, {"30,000", "0.00"}}, tables[0])
}

func TestLoadTablesBrokenSidecar(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "statement.tables.json"), []byte("{not json"), 0o644))

	_, err := LoadTables(pdfPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement.tables.json")
}

func TestParseTables(t *testing.T) {
	tables, err := ParseTables(nil)
	require.NoError(t, err)
	assert.Nil(t, tables)

	tables, err = ParseTables([]byte(`[[["a"]], [["b", "c"]]]`))
	require.NoError(t, err)
	assert.Len(t, tables, 2)

	_, err = ParseTables([]byte("garbage"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		err := Validate(filepath.Join(dir, "nope.pdf"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not found")
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(dir, "statement.txt")
		require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))
		err := Validate(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a PDF")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.pdf")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		err := Validate(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("not actually a pdf", func(t *testing.T) {
		path := filepath.Join(dir, "fake.pdf")
		require.NoError(t, os.WriteFile(path, []byte("plain text, no PDF structure"), 0o644))
		assert.Error(t, Validate(path))
	})
}

func TestJoinPages(t *testing.T) {
	joined := joinPages([]string{"first page", "second page"})
	assert.Equal(t, "--- Page 1 ---\nfirst page\n--- Page 2 ---\nsecond page", joined)
}

func TestIsReadableText(t *testing.T) {
	statement := "AXIS BANK Credit Card Statement. Total Payment Due 78,708.38 Dr, Payment Due Date 04/11/2021."

	tests := []struct {
		name  string
		pages []string
		want  bool
	}{
		{"clean statement text", []string{statement}, true},
		{"too short", []string{"credit card"}, false},
		{"no statement vocabulary", []string{"the quick brown fox jumps over the lazy dog again and again and again"}, false},
		{"mojibake", []string{"çé¿æ¼ñ statement çé¿æ¼ñçé¿æ¼ñçé¿æ¼ñçé¿æ¼ñçé¿æ¼ñçé¿æ¼ñçé¿æ¼ñçé¿æ¼ñ"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isReadableText(tt.pages))
		})
	}
}

func TestTextQuality(t *testing.T) {
	assert.Equal(t, 1.0, textQuality([]string{"clean ascii text 123, with ₹ and `backtick`"}))
	assert.Less(t, textQuality([]string{"ÿþýüûú"}), 0.5)
	assert.Zero(t, textQuality(nil))
}
