// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/textenc/internal/config"
	"github.com/idelchi/textenc/internal/encryption"
	"github.com/idelchi/textenc/internal/fileutil"
)

// ErrNoInputs is returned when a run has nothing to process.
var ErrNoInputs = errors.New("no inputs: pass text as arguments, '-' for stdin, or --from")

// Streams bundles the standard streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run is the main logic of the application.
// It encrypts or decrypts every input and prints one result per line, in input order.
// Failed inputs produce an empty line. Results are written verbatim, so line N of the
// output belongs to input N only while no decrypted plaintext contains a line break.
func Run(cfg *config.Config, logger hclog.Logger, streams Streams) error {
	start := time.Now()

	inputs, err := gatherInputs(cfg.Inputs, cfg.From, streams.In)
	if err != nil {
		return fmt.Errorf("gathering inputs: %w", err)
	}

	if len(inputs) == 0 {
		return ErrNoInputs
	}

	codec, err := newCodec(cfg, logger)
	if err != nil {
		return err
	}

	proc := encryption.NewProcessor(codec, cfg.Decrypt, cfg.Parallel, logger.Named("processor"))

	results, processed, errored, procErr := proc.Process(inputs)

	var out strings.Builder

	for _, result := range results {
		if result.Error != nil {
			fmt.Fprintf(streams.Err, "Error processing input #%d: %v\n", result.Index+1, result.Error)
		}

		out.WriteString(result.Output)
		out.WriteByte('\n')
	}

	totalSize := int64(out.Len())

	if cfg.Output != "" {
		totalSize, err = fileutil.WriteAtomic(cfg.Output, []byte(out.String()))
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		if !cfg.Quiet {
			fmt.Fprintf(streams.Err, "Wrote %d result(s) to %q\n", len(results), cfg.Output)
		}
	} else {
		fmt.Fprint(streams.Out, out.String())
	}

	if cfg.Stats {
		printStats(streams.Err, len(inputs), processed, errored, totalSize, time.Since(start))
	}

	if procErr != nil {
		return fmt.Errorf("running logic: %w", procErr)
	}

	return nil
}

// RunDemo encrypts the text "test", prints the ciphertext, decrypts it and prints
// the recovered plaintext. Without a configured key it uses a random one.
func RunDemo(cfg *config.Config, logger hclog.Logger, out io.Writer) error {
	if !cfg.HasKey() {
		key, err := key.New(encryption.AesKeySize)
		if err != nil {
			return fmt.Errorf("generating key: %w", err)
		}

		logger.Warn("no key configured, using an ephemeral random key")

		cfg.Key = key.AsHex()
	}

	codec, err := newCodec(cfg, logger)
	if err != nil {
		return err
	}

	cipherText := codec.EncryptOrEmpty("test")
	fmt.Fprintf(out, "cipherText: %s\n", cipherText)

	plainText := codec.DecryptOrEmpty(cipherText)
	fmt.Fprintf(out, "plainText: %s\n", plainText)

	return nil
}

func newCodec(cfg *config.Config, logger hclog.Logger) (*encryption.Codec, error) {
	key, err := cfg.ResolveKey()
	if err != nil {
		return nil, fmt.Errorf("resolving key: %w", err)
	}

	codec, err := encryption.NewCodec(key, encryption.WithLogger(logger.Named("codec")))
	if err != nil {
		return nil, fmt.Errorf("creating codec: %w", err)
	}

	return codec, nil
}

func printStats(w io.Writer, inputs, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Inputs:    %d\n", inputs)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (length of the output)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
