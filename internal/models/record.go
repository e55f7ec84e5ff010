package models

import "strings"

// Bank identifies a supported statement issuer.
type Bank string

const (
	BankAxis    Bank = "axis"
	BankCiti    Bank = "citi"
	BankHDFC    Bank = "hdfc"
	BankICICI   Bank = "icici"
	BankSilk    Bank = "silk"
	BankGeneric Bank = "generic"
	BankUnknown Bank = "unknown"
)

// SupportedBanks lists the banks with dedicated extraction rules, in
// detection tie-break priority order.
var SupportedBanks = []Bank{BankAxis, BankCiti, BankHDFC, BankICICI, BankSilk}

// Extraction outcome for a single document.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusError   = "error"
)

// FieldNames are the five extracted fields, in output order.
var FieldNames = []string{
	"cardholder_name",
	"card_number",
	"credit_limit",
	"total_due",
	"payment_due_date",
}

// Fields holds the five extracted values. An empty string means the field
// could not be extracted.
type Fields struct {
	CardholderName string `json:"cardholder_name,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`
	CreditLimit    string `json:"credit_limit,omitempty"`
	TotalDue       string `json:"total_due,omitempty"`
	PaymentDueDate string `json:"payment_due_date,omitempty"`
}

// Get returns the value of a field by its wire name.
func (f Fields) Get(name string) string {
	switch name {
	case "cardholder_name":
		return f.CardholderName
	case "card_number":
		return f.CardNumber
	case "credit_limit":
		return f.CreditLimit
	case "total_due":
		return f.TotalDue
	case "payment_due_date":
		return f.PaymentDueDate
	}
	return ""
}

// Set assigns the value of a field by its wire name.
func (f *Fields) Set(name, value string) {
	switch name {
	case "cardholder_name":
		f.CardholderName = value
	case "card_number":
		f.CardNumber = value
	case "credit_limit":
		f.CreditLimit = value
	case "total_due":
		f.TotalDue = value
	case "payment_due_date":
		f.PaymentDueDate = value
	}
}

// Missing returns the wire names of fields that are empty after trimming.
func (f Fields) Missing() []string {
	var missing []string
	for _, name := range FieldNames {
		if strings.TrimSpace(f.Get(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Complete reports whether all five fields are non-blank.
func (f Fields) Complete() bool {
	return len(f.Missing()) == 0
}

// StatementRecord is the extraction result for one document. It is created
// once by a parser contract and immutable afterwards.
type StatementRecord struct {
	Bank     Bank   `json:"bank"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Fields
	Errors       []string `json:"errors,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}
