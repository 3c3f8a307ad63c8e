package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	for _, member := range [][]string{
		{"--id", "alice", "--name", "Alice"},
		{"--id", "bob", "--name", "Bob"},
		{"--id", "max", "--name", "Max"},
	} {
		_, stderr, err := runPairup(t, binaryPath, home, append([]string{"member", "add"}, member...)...)
		require.NoError(t, err, "stderr: %s", stderr)
	}

	stdout, stderr, err := runPairup(t, binaryPath, home, "pairs", "rotate", "--no-notify")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "1. Alice & Bob")
	assert.Contains(t, stdout, "unpaired: Max")

	stdout, stderr, err = runPairup(t, binaryPath, home, "pairs", "plan")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "1. Alice & Max")
	assert.Contains(t, stdout, "unpaired: Bob")

	stdout, stderr, err = runPairup(t, binaryPath, home, "session", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "planned\tAlice & Bob")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pairup-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pairup")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pairup binary: %s", string(output))
	return binaryPath
}

func runPairup(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
