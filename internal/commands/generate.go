package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/textenc/internal/config"
	"github.com/idelchi/textenc/internal/encryption"
)

// NewGenerateCommand creates a new cobra command printing a random hex-encoded key.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return cobraext.Validate(cfg, &cfg.Generate)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := key.New(cfg.Generate.Size)
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), key.AsHex())

			return nil
		},
	}

	cmd.Flags().Int("size", encryption.AesKeySize, "Key size in bytes (16, 24 or 32)")

	return cmd
}
