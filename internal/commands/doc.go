// Package commands provides the command-line interface for the textenc tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key generation
//   - a round-trip demonstration
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/textenc/internal/config"
	"github.com/idelchi/textenc/internal/logging"
	"github.com/idelchi/textenc/internal/logic"
)

// preRun returns a PreRunE handler that stores the positional args as inputs
// and validates the configuration.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Decrypt = decrypt
		cfg.Inputs = args

		return cobraext.Validate(cfg, cfg)
	}
}

// newLogger builds the CLI logger from the configuration.
func newLogger(cfg *config.Config) hclog.Logger {
	logger := logging.NewLogger("textenc", cfg.LogLevel, cfg.LogJSON, os.Stderr)

	if logger.IsDebug() {
		if masked, err := cfg.Masked(); err == nil {
			logger.Debug("configuration", "config", masked)
		}
	}

	return logger
}

// run processes the configured inputs with the command's streams.
func run(cmd *cobra.Command, cfg *config.Config) error {
	return logic.Run(cfg, newLogger(cfg), logic.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}
