package logic_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/textenc/internal/config"
	"github.com/idelchi/textenc/internal/logic"
)

const hexKey = "6578616d706c657365637265746b65796578616d706c657365637265746b6579"

func newConfig(inputs ...string) *config.Config {
	return &config.Config{
		Key:      hexKey,
		Derive:   "raw",
		Parallel: 4,
		LogLevel: "off",
		Inputs:   inputs,
	}
}

func run(t *testing.T, cfg *config.Config, stdin string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	err = logic.Run(cfg, hclog.NewNullLogger(), logic.Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	})

	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRunRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	inputs := []string{"alpha", "", "gamma", "Hello 世界", `{"a":1}`}

	encrypted, _, err := run(t, newConfig(inputs...), "")
	require.NoError(t, err)

	ciphertexts := lines(encrypted)
	require.Len(t, ciphertexts, len(inputs))

	cfg := newConfig(ciphertexts...)
	cfg.Decrypt = true

	decrypted, _, err := run(t, cfg, "")
	require.NoError(t, err)
	require.Equal(t, inputs, lines(decrypted))
}

func TestRunReadsStdinAndJSONC(t *testing.T) {
	t.Parallel()

	from := filepath.Join(t.TempDir(), "inputs.jsonc")
	require.NoError(t, os.WriteFile(from, []byte(`[
  // comments are allowed
  "from-file",
]`), 0o600))

	cfg := newConfig("arg", "-")
	cfg.From = from

	out, _, err := run(t, cfg, "line one\nline two\n")
	require.NoError(t, err)
	require.Len(t, lines(out), 4)
}

func TestRunReportsFailures(t *testing.T) {
	t.Parallel()

	encrypted, _, err := run(t, newConfig("ok"), "")
	require.NoError(t, err)

	cfg := newConfig(strings.TrimSpace(encrypted), "not-valid-base64!!", "")
	cfg.Decrypt = true

	out, errOut, err := run(t, cfg, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 3 failed")
	require.Equal(t, []string{"ok", "", ""}, lines(out))
	require.Contains(t, errOut, "input #2")
	require.Contains(t, errOut, "input #3")
}

func TestRunWritesOutputFile(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "out.txt")

	cfg := newConfig("a", "b")
	cfg.Output = output
	cfg.Quiet = true
	cfg.Stats = true

	stdout, stderr, err := run(t, cfg, "")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Processed: 2")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, lines(string(data)), 2)
}

func TestRunWithoutInputs(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, newConfig(), "")
	require.ErrorIs(t, err, logic.ErrNoInputs)
}

func TestRunWithoutKey(t *testing.T) {
	t.Parallel()

	cfg := newConfig("x")
	cfg.Key = ""

	_, _, err := run(t, cfg, "")
	require.ErrorIs(t, err, config.ErrNoKey)
}

func TestRunDemo(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*config.Config{
		{Passphrase: "examplesecretkeyexamplesecretkey", Derive: "raw"},
		{Derive: "raw"},
	} {
		var out bytes.Buffer

		require.NoError(t, logic.RunDemo(cfg, hclog.NewNullLogger(), &out))

		got := lines(out.String())
		require.Len(t, got, 2)
		require.True(t, strings.HasPrefix(got[0], "cipherText: "))
		require.Greater(t, len(strings.TrimPrefix(got[0], "cipherText: ")), 24)
		require.Equal(t, "plainText: test", got[1])
	}
}

func TestRunMultilinePlaintext(t *testing.T) {
	t.Parallel()

	encrypted, _, err := run(t, newConfig("first\nsecond", "third"), "")
	require.NoError(t, err)

	ciphertexts := lines(encrypted)
	require.Len(t, ciphertexts, 2)

	cfg := newConfig(ciphertexts...)
	cfg.Decrypt = true

	decrypted, _, err := run(t, cfg, "")
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\nthird\n", decrypted)
}

func TestRunDecryptsCRLFStdin(t *testing.T) {
	t.Parallel()

	cfg := newConfig("-")
	cfg.Decrypt = true

	out, _, err := run(t, cfg, "AAECAwQFBgcICQoLDA0ODyYUMpi0dKogjg2O49YxWqw=\r\n")
	require.NoError(t, err)
	require.Equal(t, "test\n", out)
}
