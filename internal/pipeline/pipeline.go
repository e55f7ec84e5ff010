// Package pipeline runs the full statement flow: validate, extract text and
// tables, detect the bank, and parse. It is the shared engine behind the CLI
// and the HTTP API.
package pipeline

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/detector"
	"github.com/OmMakwana02/CreditCardParser/internal/extractor"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
	"github.com/OmMakwana02/CreditCardParser/internal/parser"
)

// Pipeline wires the detector and parser registry together. Build once,
// reuse across files; all components are safe for concurrent use.
type Pipeline struct {
	detector *detector.Detector
	registry *parser.Registry
	log      zerolog.Logger
}

// New builds a pipeline from cfg.
func New(cfg *config.Config, log zerolog.Logger) (*Pipeline, error) {
	det, err := detector.New(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		detector: det,
		registry: parser.NewRegistry(cfg, log),
		log:      log,
	}, nil
}

// Process runs one PDF statement through the pipeline. Failures along the
// way come back as an error-status record, never as a Go error; a batch
// always gets one record per file.
func (p *Pipeline) Process(path string) models.StatementRecord {
	filename := filepath.Base(path)

	if err := extractor.Validate(path); err != nil {
		p.log.Error().Err(err).Str("filename", filename).Msg("invalid statement file")
		return errorRecord(filename, err.Error())
	}

	text, err := extractor.ExtractText(path)
	if err != nil {
		p.log.Error().Err(err).Str("filename", filename).Msg("text extraction failed")
		return errorRecord(filename, err.Error())
	}

	tables, err := extractor.LoadTables(path)
	if err != nil {
		// A broken sidecar degrades to text-only extraction.
		p.log.Warn().Err(err).Str("filename", filename).Msg("table sidecar unusable")
		tables = nil
	}
	p.log.Info().Str("filename", filename).Int("tables", len(tables)).Msg("statement extracted")

	bank := p.detector.Detect(text)
	return p.registry.Contract(bank).Parse(text, filename, tables)
}

// ProcessBatch runs every path through Process, in input order.
func (p *Pipeline) ProcessBatch(paths []string) []models.StatementRecord {
	records := make([]models.StatementRecord, 0, len(paths))
	for _, path := range paths {
		records = append(records, p.Process(path))
	}
	return records
}

// ParseText runs already-extracted text and tables through detection and
// parsing, skipping the PDF stage.
func (p *Pipeline) ParseText(text, filename string, tables []models.Table) models.StatementRecord {
	bank := p.detector.Detect(text)
	return p.registry.Contract(bank).Parse(text, filename, tables)
}

func errorRecord(filename, msg string) models.StatementRecord {
	return models.StatementRecord{
		Bank:         models.BankUnknown,
		Filename:     filename,
		Status:       models.StatusError,
		ErrorMessage: msg,
	}
}
