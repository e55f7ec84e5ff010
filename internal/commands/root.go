// Package commands builds the CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/OmMakwana02/CreditCardParser/internal/config"
)

const version = "1.0.0"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "creditcardparser",
		Short:   "Extract key fields from credit card statement PDFs",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
