package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/textenc/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "textenc [flags] command [flags]"
	root.Short = "Text encryption utility"
	root.Long = `A text encryption utility using AES-CBC with a random IV.
Ciphertexts are the Base64 encoding of the IV followed by the encrypted text.
Every flag can also be set through a TEXTENC_ prefixed environment variable.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print statistics after processing")

	flags.StringP("key", "k", "", "Encryption key (16, 24 or 32 bytes, hex-encoded)")
	flags.StringP("key-file", "f", "", "Path to the key file with the hex-encoded encryption key")
	flags.StringP("passphrase", "p", "", "Passphrase to derive the key from")
	flags.String("derive", "raw", "Passphrase derivation: raw (bytes used as key) or hkdf")

	flags.StringP("output", "o", "", "Write results to this file instead of stdout")
	flags.String("from", "", "Read additional inputs from a JSONC array of strings")

	flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error or off")
	flags.Bool("log-json", false, "Emit logs as JSON")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewGenerateCommand(cfg),
		NewDemoCommand(cfg),
	)

	return root
}
