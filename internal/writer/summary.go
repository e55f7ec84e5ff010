package writer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// BankStats counts outcomes for one bank.
type BankStats struct {
	Success int `json:"success"`
	Partial int `json:"partial"`
	Error   int `json:"error"`
}

// Summary aggregates a batch of extraction results.
type Summary struct {
	TotalRecords int                       `json:"total_records"`
	Successful   int                       `json:"successful"`
	Partial      int                       `json:"partial"`
	Errors       int                       `json:"errors"`
	SuccessRate  string                    `json:"success_rate"`
	ByBank       map[models.Bank]BankStats `json:"by_bank"`
}

// Summarize builds outcome statistics for records.
func Summarize(records []models.StatementRecord) Summary {
	s := Summary{
		TotalRecords: len(records),
		SuccessRate:  "0%",
		ByBank:       make(map[models.Bank]BankStats),
	}

	for _, rec := range records {
		stats := s.ByBank[rec.Bank]
		switch rec.Status {
		case models.StatusSuccess:
			s.Successful++
			stats.Success++
		case models.StatusPartial:
			s.Partial++
			stats.Partial++
		default:
			s.Errors++
			stats.Error++
		}
		s.ByBank[rec.Bank] = stats
	}

	if s.TotalRecords > 0 {
		s.SuccessRate = fmt.Sprintf("%.2f%%", float64(s.Successful)/float64(s.TotalRecords)*100)
	}
	return s
}

// Print writes a human-readable summary report.
func (s Summary) Print(out io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "PARSING SUMMARY")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Total Records:   %d\n", s.TotalRecords)
	fmt.Fprintf(out, "Successful:      %d\n", s.Successful)
	fmt.Fprintf(out, "Partial:         %d\n", s.Partial)
	fmt.Fprintf(out, "Errors:          %d\n", s.Errors)
	fmt.Fprintf(out, "Success Rate:    %s\n", s.SuccessRate)

	fmt.Fprintln(out, "\nBy Bank:")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, bank := range sortedBanks(s.ByBank) {
		stats := s.ByBank[bank]
		fmt.Fprintf(out, "\n  %s:\n", strings.ToUpper(string(bank)))
		fmt.Fprintf(out, "    Success: %d\n", stats.Success)
		fmt.Fprintf(out, "    Partial: %d\n", stats.Partial)
		fmt.Fprintf(out, "    Error:   %d\n", stats.Error)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
}

func sortedBanks(byBank map[models.Bank]BankStats) []models.Bank {
	banks := make([]models.Bank, 0, len(byBank))
	for bank := range byBank {
		banks = append(banks, bank)
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i] < banks[j] })
	return banks
}
