package commands

import (
	"github.com/spf13/cobra"

	"github.com/OmMakwana02/CreditCardParser/internal/api"
	"github.com/OmMakwana02/CreditCardParser/internal/logger"
	"github.com/OmMakwana02/CreditCardParser/internal/pipeline"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement parsing HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config override")
	cmd.Flags().StringVar(&addr, "addr", ":5000", "listen address")

	return cmd
}

func runServe(configPath, addr string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log := logger.New()
	pl, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg, pl, log)
	log.Info().Str("addr", addr).Msg("starting statement parser API")
	return server.App().Listen(addr)
}
