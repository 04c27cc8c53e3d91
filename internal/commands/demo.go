package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/textenc/internal/config"
	"github.com/idelchi/textenc/internal/logic"
)

// NewDemoCommand creates a new cobra command that round-trips the text "test".
func NewDemoCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encrypt and decrypt the text \"test\"",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return cobraext.Validate(cfg, cfg)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunDemo(cfg, newLogger(cfg), cmd.OutOrStdout())
		},
	}
}
