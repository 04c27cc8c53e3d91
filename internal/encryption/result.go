package encryption

// Result represents the outcome of processing a single input.
type Result struct {
	// Position of the input in the batch
	Index int

	// Input text
	Input string

	// Output text, empty on error
	Output string

	// Any error that occurred during processing
	Error error
}
