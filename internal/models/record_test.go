package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsGetSetRoundTrip(t *testing.T) {
	var f Fields
	for _, name := range FieldNames {
		assert.Empty(t, f.Get(name))
		f.Set(name, "v-"+name)
		assert.Equal(t, "v-"+name, f.Get(name))
	}
}

func TestFieldsMissing(t *testing.T) {
	f := Fields{
		CardholderName: "RIZWAN AHMED",
		CardNumber:     "4868",
		TotalDue:       "   ",
	}
	assert.Equal(t, []string{"credit_limit", "total_due", "payment_due_date"}, f.Missing())
	assert.False(t, f.Complete())

	f.CreditLimit = "35,000.00"
	f.TotalDue = "12,144.55"
	f.PaymentDueDate = "2018-04-10"
	assert.True(t, f.Complete())
}

func TestStatementRecordJSONOmitsEmptyFields(t *testing.T) {
	rec := StatementRecord{
		Bank:     BankAxis,
		Filename: "axis.pdf",
		Status:   StatusPartial,
		Fields:   Fields{CardholderName: "PATNALA VINOD KUMAR"},
		Errors:   []string{"Missing field: card_number"},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "axis", decoded["bank"])
	assert.Equal(t, "PATNALA VINOD KUMAR", decoded["cardholder_name"])
	assert.NotContains(t, decoded, "card_number")
	assert.NotContains(t, decoded, "error_message")
}

func TestTableFlatten(t *testing.T) {
	table := Table{
		{"Total Payment Due", "", "Payment Due Date"},
		{"78,708.38 Dr", "04/11/2021"},
	}
	assert.Equal(t, "Total Payment Due Payment Due Date", FlattenRow(table[0]))
	assert.Equal(t, "Total Payment Due Payment Due Date 78,708.38 Dr 04/11/2021", table.Flatten())
}

func TestTableUnmarshalNullCells(t *testing.T) {
	var tables []Table
	require.NoError(t, json.Unmarshal([]byte(`[[["a", null], [null, "b"]]]`), &tables))
	require.Len(t, tables, 1)
	assert.Equal(t, Table{{"a", ""}, {"", "b"}}, tables[0])
}
