package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "init", dir, "--name", "Pelupessy Motor Rental")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized fleetledger workspace")

	for _, f := range []string{
		"fleetledger.yaml",
		filepath.Join("accounts", "chart-of-accounts.csv"),
		filepath.Join("import", ".gitkeep"),
	} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "missing %s", f)
	}
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runCommand(t, "init", t.TempDir())
	assert.Error(t, err)
}
