package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	orig := configDir
	configDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDir = orig })
}

func TestRunWrongArgumentCount(t *testing.T) {
	withConfigDir(t, t.TempDir())

	for _, args := range [][]string{{}, {"a.csv", "b.csv"}} {
		var stdout, stderr bytes.Buffer

		code := run(args, &stdout, &stderr, os.DirFS(".."))

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Usage: txengine <input_csv_file>")
	}
}

func TestRunUnknownFlagPrintsUsage(t *testing.T) {
	withConfigDir(t, t.TempDir())

	for _, args := range [][]string{{"-x"}, {"--verbose", "tx.csv"}} {
		var stdout, stderr bytes.Buffer

		code := run(args, &stdout, &stderr, os.DirFS(".."))

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "Usage: txengine <input_csv_file>\n", stderr.String())
	}
}

func TestRunProcessesFile(t *testing.T) {
	withConfigDir(t, t.TempDir())
	input := filepath.Join(t.TempDir(), "tx.csv")
	require.NoError(t, os.WriteFile(input, []byte("type,client,tx,amount\ndeposit,1,1,1000.0\ndispute,1,1,\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{input}, &stdout, &stderr, os.DirFS(".."))

	assert.Equal(t, 0, code)
	assert.Equal(t, "client,available,held,total,locked\n1,0.0000,1000.0000,1000.0000,false\n", stdout.String())
}

func TestRunMissingFile(t *testing.T) {
	withConfigDir(t, t.TempDir())
	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(t.TempDir(), "missing.csv")}, &stdout, &stderr, os.DirFS(".."))

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Can not open input file")
}

func TestRunInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("feed:\n  capacity: 0\n"), 0o644))
	input := filepath.Join(t.TempDir(), "tx.csv")
	require.NoError(t, os.WriteFile(input, []byte("type,client,tx,amount\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{input}, &stdout, &stderr, os.DirFS(".."))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "feed.capacity")
}
