// Package api exposes the statement parser over HTTP.
package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
	"github.com/OmMakwana02/CreditCardParser/internal/models"
	"github.com/OmMakwana02/CreditCardParser/internal/pipeline"
	"github.com/OmMakwana02/CreditCardParser/internal/writer"
)

// ParseResponse is the JSON response from the /api/parse endpoint.
type ParseResponse struct {
	Success bool                     `json:"success"`
	Error   string                   `json:"error,omitempty"`
	BatchID string                   `json:"batch_id,omitempty"`
	Results []models.StatementRecord `json:"results,omitempty"`
	Summary *writer.Summary          `json:"summary,omitempty"`
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	log      zerolog.Logger
}

// NewServer wires the pipeline into a server.
func NewServer(cfg *config.Config, pl *pipeline.Pipeline, log zerolog.Logger) *Server {
	return &Server{cfg: cfg, pipeline: pl, log: log}
}

// App builds the fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             int(s.cfg.MaxFileSize) * s.cfg.MaxFiles,
		DisableStartupMessage: true,
	})

	app.Get("/api/health", s.HandleHealth)
	app.Post("/api/parse", s.HandleParse)
	return app
}

// HandleHealth reports service status and limits.
func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"supported_banks": models.SupportedBanks,
		"max_files":       s.cfg.MaxFiles,
	})
}

// HandleParse accepts a multipart batch of PDF statements under the "files"
// field, parses each, and returns per-file records plus a batch summary.
// Table sidecars ("<name>.tables.json") may be uploaded alongside their PDFs
// in the same field.
func (s *Server) HandleParse(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "No files uploaded")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return badRequest(c, "No files selected")
	}

	pdfCount := 0
	for _, fh := range files {
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".tables.json") {
			pdfCount++
		}
	}
	if pdfCount > s.cfg.MaxFiles {
		return badRequest(c, fmt.Sprintf("Maximum %d files allowed", s.cfg.MaxFiles))
	}

	batchID := uuid.NewString()
	log := s.log.With().Str("batch_id", batchID).Logger()
	log.Info().Int("files", len(files)).Msg("received upload batch")

	// One scratch directory per batch so sidecars land next to their PDFs.
	dir, err := os.MkdirTemp("", "statements-"+batchID)
	if err != nil {
		return serverError(c, "Failed to store uploads")
	}
	defer os.RemoveAll(dir)

	var paths []string
	var records []models.StatementRecord
	for _, fh := range files {
		name := filepath.Base(fh.Filename)
		if name == "" || name == "." {
			continue
		}
		if fh.Size > s.cfg.MaxFileSize {
			records = append(records, models.StatementRecord{
				Bank:         models.BankUnknown,
				Filename:     name,
				Status:       models.StatusError,
				ErrorMessage: fmt.Sprintf("File too large. Maximum size: %dMB", s.cfg.MaxFileSize>>20),
			})
			continue
		}

		dst := filepath.Join(dir, name)
		if err := c.SaveFile(fh, dst); err != nil {
			log.Error().Err(err).Str("filename", name).Msg("saving upload failed")
			records = append(records, models.StatementRecord{
				Bank:         models.BankUnknown,
				Filename:     name,
				Status:       models.StatusError,
				ErrorMessage: "Failed to store uploaded file",
			})
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), ".tables.json") {
			continue
		}
		paths = append(paths, dst)
	}

	records = append(records, s.pipeline.ProcessBatch(paths)...)
	if len(records) == 0 {
		return badRequest(c, "No files selected")
	}

	summary := writer.Summarize(records)
	return c.JSON(ParseResponse{
		Success: true,
		BatchID: batchID,
		Results: records,
		Summary: &summary,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ParseResponse{Success: false, Error: msg})
}

func serverError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ParseResponse{Success: false, Error: msg})
}
