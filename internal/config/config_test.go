package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleetledger.yaml")
	cfg := Default("Pelupessy Motor Rental")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefault(t *testing.T) {
	cfg := Default("Armada Jaya")
	assert.Equal(t, "Armada Jaya", cfg.Business.Name)
	assert.Equal(t, "rental_fleet", cfg.Business.EntityType)
	assert.Equal(t, "1002", cfg.Posting.BankAccount)
	assert.Equal(t, "2000", cfg.Posting.PayableAccount)
	assert.Equal(t, "Rp", cfg.Report.CurrencyLabel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
