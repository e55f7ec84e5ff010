package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/OmMakwana02/CreditCardParser/internal/models"
	"github.com/OmMakwana02/CreditCardParser/internal/textutil"
)

// NameRule is one step of a bank's cardholder-name cascade. The captured
// name must split into an acceptable number of whitespace-separated tokens.
type NameRule struct {
	Pattern *regexp.Regexp
	Group   int // capture group; 0 = whole match
	// Token bounds; zero values default to the 2..5 band.
	MinTokens int
	MaxTokens int
	// MinWordLen rejects names containing words shorter than this.
	MinWordLen int
	// MaxLen rejects implausibly long captures; names of MaxLen characters
	// or more are dropped.
	MaxLen int
}

func (r NameRule) apply(text string) string {
	m := r.Pattern.FindStringSubmatch(text)
	if m == nil || r.Group >= len(m) {
		return ""
	}
	name := strings.TrimSpace(m[r.Group])

	minTokens, maxTokens := r.MinTokens, r.MaxTokens
	if minTokens == 0 {
		minTokens = 2
	}
	if maxTokens == 0 {
		maxTokens = 5
	}
	words := strings.Fields(name)
	if len(words) < minTokens || len(words) > maxTokens {
		return ""
	}
	if r.MaxLen > 0 && len(name) >= r.MaxLen {
		return ""
	}
	if r.MinWordLen > 0 {
		for _, w := range words {
			if len(w) < r.MinWordLen {
				return ""
			}
		}
	}
	return name
}

// BankSpec is the complete extraction configuration for one bank. Banks are
// data: adding a bank means writing a new spec value, not a new type.
type BankSpec struct {
	Bank       models.Bank
	NameRules  []NameRule
	TableRules []TableRule
	// TextRules holds the per-field text cascades used for fields the
	// table pass left empty.
	TextRules map[string][]TextRule
	// PreClean collapses whitespace and strips page markers before text
	// extraction (the generic strategy's behavior).
	PreClean bool
}

// Strategy executes a BankSpec against one document. Stateless and safe for
// concurrent use.
type Strategy struct {
	spec *BankSpec
	log  zerolog.Logger
}

// NewStrategy binds a bank spec to a logger.
func NewStrategy(spec *BankSpec, log zerolog.Logger) *Strategy {
	return &Strategy{spec: spec, log: log.With().Str("bank", string(spec.Bank)).Logger()}
}

// Bank returns the identifier of the bank this strategy extracts.
func (s *Strategy) Bank() models.Bank {
	return s.spec.Bank
}

// Extract runs the fixed extraction skeleton: name from text, then a table
// pass, then text-regex cascades for whatever is still empty. Individual
// misses leave fields empty; only unexpected failures surface as errors.
func (s *Strategy) Extract(text string, tables []models.Table) (models.Fields, error) {
	if s.spec.PreClean {
		text = textutil.NormalizeWhitespace(textutil.CleanText(text))
	}

	var fields models.Fields

	// The name always comes from raw text. Table cells shuffle the holder
	// name unpredictably between layouts; label-anchored text patterns
	// held up better on real statements.
	fields.CardholderName = s.extractName(text)

	if len(tables) > 0 {
		s.log.Debug().Int("tables", len(tables)).Msg("attempting table-based extraction")
		name := fields.CardholderName
		for _, table := range tables {
			for _, rule := range s.spec.TableRules {
				rule.apply(table, &fields)
			}
		}
		// Table-derived values never replace the text-derived name.
		fields.CardholderName = name
	}

	if missing := fields.Missing(); len(missing) > 0 {
		s.log.Debug().Strs("fields", missing).Msg("extracting missing fields from text")
		for _, field := range missing {
			if field == "cardholder_name" {
				continue
			}
			fields.Set(field, s.extractField(field, text))
		}
	}

	return fields, nil
}

func (s *Strategy) extractName(text string) string {
	for _, rule := range s.spec.NameRules {
		if name := rule.apply(text); name != "" {
			return name
		}
	}
	// Bank-specific patterns missed; fall through to the bank-agnostic
	// all-caps heuristic.
	if name := genericCardholderName(text); name != "" {
		return name
	}
	s.log.Warn().Msg("could not extract cardholder name")
	return ""
}

func (s *Strategy) extractField(field, text string) string {
	for _, rule := range s.spec.TextRules[field] {
		if v := rule.apply(text); v != "" {
			return v
		}
	}
	s.log.Debug().Str("field", field).Msg("text cascade found nothing")
	return ""
}
