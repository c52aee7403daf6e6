package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/accounts"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/buildinfo"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/config"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/ledger"
)

// configFile is the workspace configuration file name.
const configFile = "fleetledger.yaml"

// defaultChartPath is used when the config names no chart file.
const defaultChartPath = "accounts/chart-of-accounts.csv"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fleetledger",
		Short:   "Double-entry bookkeeping for a small rental fleet",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}

// loadWorkspace reads the workspace config and chart of accounts from
// dir. A missing config or chart falls back to built-in defaults, so
// every command works in a bare directory too.
func loadWorkspace(dir string) (*config.Config, *accounts.Service, error) {
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default("")
	} else if err != nil {
		return nil, nil, err
	}

	relPath := cfg.Chart.Path
	if relPath == "" {
		relPath = defaultChartPath
	}
	chart, err := accounts.Load(filepath.Join(dir, filepath.FromSlash(relPath)))
	if errors.Is(err, fs.ErrNotExist) {
		chart = accounts.NewService(accounts.DefaultChart())
	} else if err != nil {
		return nil, nil, err
	}

	return cfg, chart, nil
}

// newLedger builds the derivation service for a workspace, applying
// the config's posting-account overrides.
func newLedger(cfg *config.Config, chart *accounts.Service) *ledger.Service {
	return ledger.NewServiceWithPosting(chart, ledger.PostingAccounts{
		Bank:    cfg.Posting.BankAccount,
		Payable: cfg.Posting.PayableAccount,
	})
}
