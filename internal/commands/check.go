package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/importer"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/ledger"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/tabular"
)

func newCheckCommand() *cobra.Command {
	var workspace string
	var grouped bool

	cmd := &cobra.Command{
		Use:   "check <file.csv>",
		Short: "Validate the journal derived from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, workspace, args[0], grouped)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "treat rows as raw journal lines grouped by reference")

	return cmd
}

func runCheck(cmd *cobra.Command, workspace, path string, grouped bool) error {
	cfg, chart, err := loadWorkspace(workspace)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc := tabular.ParseDocument(string(data))

	var errs []ledger.ValidationError
	if grouped {
		res := importer.MaterializeGrouped(doc)
		errs = ledger.ValidateEntries(res.Entries, chart)
	} else {
		res := importer.Materialize(doc)
		errs = newLedger(cfg, chart).Check(res.Transactions, nil)
	}

	out := cmd.OutOrStdout()
	if len(errs) == 0 {
		fmt.Fprintln(out, "journal OK")
		return nil
	}

	for _, e := range errs {
		fmt.Fprintln(out, e.Error())
	}
	return fmt.Errorf("%d invariant violation(s)", len(errs))
}
