package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/importer"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/store"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/tabular"
)

func newReportCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "report <file.csv...>",
		Short: "Derive an income statement from one or more CSV exports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, workspace, args)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")

	return cmd
}

func runReport(cmd *cobra.Command, workspace string, paths []string) error {
	cfg, chart, err := loadWorkspace(workspace)
	if err != nil {
		return err
	}

	txStore := store.New()
	totalSkipped := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		res := importer.Materialize(tabular.ParseDocument(string(data)))
		txStore.AppendBatch(res.Transactions)
		totalSkipped += res.Skipped
	}

	out := cmd.OutOrStdout()
	if txStore.Len() == 0 {
		fmt.Fprintln(out, "no valid data found")
		return nil
	}

	svc := newLedger(cfg, chart)
	stmt, _ := svc.IncomeStatement(txStore.All(), nil)

	printStatement(out, cfg.Report.CurrencyLabel, stmt)
	fmt.Fprintf(out, "(%d transactions, %d rows skipped)\n", txStore.Len(), totalSkipped)
	return nil
}
