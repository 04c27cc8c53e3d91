// Command textenc encrypts and decrypts text with AES-CBC and a random IV.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/textenc/internal/commands"
	"github.com/idelchi/textenc/internal/config"
)

// Set via ldflags at build time.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	switch err := root.Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
		return
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
