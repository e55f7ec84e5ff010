package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OmMakwana02/CreditCardParser/internal/logger"
	"github.com/OmMakwana02/CreditCardParser/internal/pipeline"
	"github.com/OmMakwana02/CreditCardParser/internal/writer"
)

func newParseCommand() *cobra.Command {
	var configPath string
	var outputDir string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse <statement.pdf> [statement2.pdf ...]",
		Short: "Parse statement PDFs and write JSON and CSV results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, configPath, outputDir, quiet)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config override")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "directory for parsed_data.json and parsed_data.csv")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the summary report")

	return cmd
}

func runParse(paths []string, configPath, outputDir string, quiet bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	pl, err := pipeline.New(cfg, logger.New())
	if err != nil {
		return err
	}

	records := pl.ProcessBatch(paths)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	jsonPath := filepath.Join(outputDir, "parsed_data.json")
	if err := (&writer.JSONWriter{}).WriteToFile(jsonPath, records); err != nil {
		return err
	}

	csvPath := filepath.Join(outputDir, "parsed_data.csv")
	if err := (&writer.CSVWriter{}).WriteToFile(csvPath, records); err != nil {
		return err
	}

	if !quiet {
		writer.Summarize(records).Print(os.Stdout)
		fmt.Printf("\nResults written to %s and %s\n", jsonPath, csvPath)
	}
	return nil
}
