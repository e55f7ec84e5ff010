package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"page markers removed", "intro\n--- Page 1 ---\nbody", "intro\nbody"},
		{"marker case insensitive", "--- page 2 --- tail", "tail"},
		{"space runs collapsed", "a  \t b", "a b"},
		{"blank line runs collapsed", "a\n\n\n\nb", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  first line \n\n   \n second\t\n"
	assert.Equal(t, "first line\nsecond", NormalizeWhitespace(in))
}

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "5,000.00", "5,000.00"},
		{"rupee sign", "₹ 5,000.00", "5,000.00"},
		{"rs prefix", "Rs. 1,32,000", "1,32,000"},
		{"dollar", "$600,000.00", "600,000.00"},
		{"euro", "€25.50", "25.50"},
		{"second decimal point dropped", "1.234.56", "1.23456"},
		{"letters dropped", "78,708.38 Dr", "78,708.38"},
		{"nothing numeric", "₹ ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanAmount(tt.in))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"day first slash", "04/11/2021", "2021-11-04"},
		{"day first dash", "04-11-2021", "2021-11-04"},
		{"us fallback", "07/14/21", "2021-07-14"},
		{"two digit year", "04/11/21", "2021-11-04"},
		{"named month", "10-Apr-2018", "2018-04-10"},
		{"named month short year", "10-Apr-18", "2018-04-10"},
		{"written out", "September 5, 2022", "2022-09-05"},
		{"abbreviated written out", "Apr 10, 2018", "2018-04-10"},
		{"surrounding space", "  01/04/2023 ", "2023-04-01"},
		{"empty", "", ""},
		{"garbage", "not a date", ""},
		{"date range rejected", "17/09/2021 - 15/10/2021", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

// Ambiguous dates must resolve day-first, regardless of how plausible the US
// reading is.
func TestNormalizeDateDayFirstPriority(t *testing.T) {
	assert.Equal(t, "2020-04-03", NormalizeDate("03/04/2020"))
}

func TestLastFourDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"masked stars", "533467******7381", "7381"},
		{"masked x", "4034XXXXXXXX4383", "4383"},
		{"spaced groups", "4588 2600 0161 4868", "4868"},
		{"hyphenated", "4034-1862-0212-4383", "4383"},
		{"bare last four", "3458", "3458"},
		{"too few digits", "12X", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastFourDigits(tt.in))
		})
	}
}
