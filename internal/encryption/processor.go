package encryption

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hashicorp/go-hclog"
)

// Processor runs a Codec over a batch of inputs.
type Processor struct {
	// codec performs the per-input work
	codec *Codec

	// decrypt selects Decrypt instead of Encrypt
	decrypt bool

	// parallel bounds the number of concurrent workers
	parallel int

	// logger receives per-input diagnostics
	logger hclog.Logger
}

// NewProcessor creates a Processor. A parallel value below 1 means one worker.
func NewProcessor(codec *Codec, decrypt bool, parallel int, logger hclog.Logger) *Processor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Processor{
		codec:    codec,
		decrypt:  decrypt,
		parallel: max(1, parallel),
		logger:   logger,
	}
}

// Process concurrently encrypts or decrypts all inputs.
// Results are returned in input order. A failing input does not stop the others;
// the returned error reports how many inputs failed.
func (p *Processor) Process(inputs []string) (results []Result, processed, errored int, err error) {
	results = make([]Result, len(inputs))

	group := errgroup.Group{}
	group.SetLimit(p.parallel)

	collected := make(chan Result, len(inputs))
	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range collected {
			if result.Error != nil {
				errored++

				p.logger.Debug("input failed", "index", result.Index, "error", result.Error)
			} else {
				processed++

				p.logger.Trace("input processed", "index", result.Index)
			}

			results[result.Index] = result
		}
	}()

	for i, input := range inputs {
		group.Go(func() error {
			output, err := p.apply(input)

			collected <- Result{Index: i, Input: input, Output: output, Error: err}

			return nil
		})
	}

	_ = group.Wait()

	close(collected)

	<-done // Wait for collector to finish

	if errored > 0 {
		return results, processed, errored, fmt.Errorf("processing inputs: %d of %d failed", errored, len(inputs))
	}

	return results, processed, errored, nil
}

func (p *Processor) apply(input string) (string, error) {
	if p.decrypt {
		return p.codec.Decrypt(input)
	}

	return p.codec.Encrypt(input)
}
