package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/textenc/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [ciphertext...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt text",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, true),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}
}
