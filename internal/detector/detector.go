// Package detector identifies the issuing bank of a statement from its
// extracted text.
package detector

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
)

// Detector scores statement text against per-bank keyword pattern sets.
// Construct once at startup; safe for concurrent use.
type Detector struct {
	patterns map[models.Bank][]*regexp.Regexp
	tieBreak []models.Bank
	maxScore int
	log      zerolog.Logger
}

// New compiles the detection pattern sets from cfg. An invalid pattern is a
// configuration error and is reported rather than skipped.
func New(cfg *config.Config, log zerolog.Logger) (*Detector, error) {
	d := &Detector{
		patterns: make(map[models.Bank][]*regexp.Regexp, len(cfg.DetectionPatterns)),
		tieBreak: cfg.TieBreakOrder,
		log:      log,
	}
	for bank, raw := range cfg.DetectionPatterns {
		compiled := make([]*regexp.Regexp, 0, len(raw))
		for _, p := range raw {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, fmt.Errorf("detection pattern %q for bank %s: %w", p, bank, err)
			}
			compiled = append(compiled, re)
		}
		d.patterns[bank] = compiled
		if len(compiled) > d.maxScore {
			d.maxScore = len(compiled)
		}
	}
	return d, nil
}

// Detect returns the bank with the highest aggregate pattern-match count, or
// BankUnknown when nothing matches. It never fails; an unrecognized
// statement is an expected outcome.
func (d *Detector) Detect(text string) models.Bank {
	bank, _ := d.DetectWithConfidence(text)
	return bank
}

// DetectWithConfidence also reports a normalization-heuristic confidence in
// [0,1]: the winning score divided by the largest pattern-set size, capped
// at 1.0.
func (d *Detector) DetectWithConfidence(text string) (models.Bank, float64) {
	if strings.TrimSpace(text) == "" {
		d.log.Warn().Msg("empty text provided for bank detection")
		return models.BankUnknown, 0
	}

	scores := make(map[models.Bank]int)
	for bank, patterns := range d.patterns {
		score := 0
		for _, re := range patterns {
			score += len(re.FindAllStringIndex(text, -1))
		}
		if score > 0 {
			scores[bank] = score
		}
	}
	if len(scores) == 0 {
		d.log.Warn().Msg("could not detect bank from text")
		return models.BankUnknown, 0
	}

	// Equal scores resolve by the fixed tie-break order, so detection is
	// deterministic regardless of map iteration.
	best := models.BankUnknown
	bestScore := 0
	for _, bank := range d.rankedBanks(scores) {
		if score := scores[bank]; score > bestScore {
			best = bank
			bestScore = score
		}
	}

	confidence := float64(bestScore) / float64(d.maxScore)
	if confidence > 1 {
		confidence = 1
	}
	d.log.Info().Str("bank", string(best)).Int("score", bestScore).
		Float64("confidence", confidence).Msg("bank detected")
	return best, confidence
}

// rankedBanks lists the scoring banks in tie-break priority order. Banks
// configured outside the tie-break list come last, sorted by name.
func (d *Detector) rankedBanks(scores map[models.Bank]int) []models.Bank {
	ranked := make([]models.Bank, 0, len(scores))
	seen := make(map[models.Bank]bool, len(scores))
	for _, bank := range d.tieBreak {
		if _, ok := scores[bank]; ok {
			ranked = append(ranked, bank)
			seen[bank] = true
		}
	}
	var rest []models.Bank
	for bank := range scores {
		if !seen[bank] {
			rest = append(rest, bank)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(ranked, rest...)
}
