package logic

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
)

// stdinMarker as a positional argument reads inputs from stdin, one per line.
const stdinMarker = "-"

// LoadInputs reads a JSONC file and returns the parsed array of strings.
func LoadInputs(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading inputs file %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var inputs []string
	if err := json.Unmarshal(clean, &inputs); err != nil {
		return nil, fmt.Errorf("parsing inputs file %q: %w", path, err)
	}

	return inputs, nil
}

// readLines returns every line of r, without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 16*1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return lines, nil
}

// gatherInputs collects inputs from positional args, stdin and the --from file, in that order.
func gatherInputs(args []string, from string, stdin io.Reader) ([]string, error) {
	var inputs []string

	for _, arg := range args {
		if arg != stdinMarker {
			inputs = append(inputs, arg)

			continue
		}

		lines, err := readLines(stdin)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, lines...)
	}

	if from != "" {
		loaded, err := LoadInputs(from)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, loaded...)
	}

	return inputs, nil
}
