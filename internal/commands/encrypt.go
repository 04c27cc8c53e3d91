package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/textenc/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [text...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text",
		Long:    "Encrypt each argument and print one ciphertext per line. Use '-' to read lines from stdin.",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}
}
