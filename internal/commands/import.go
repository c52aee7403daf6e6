package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/importer"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/logging"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/store"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/tabular"
)

func newImportCommand() *cobra.Command {
	var workspace string
	var grouped bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV/TSV export and derive journal entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, workspace, args[0], grouped)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "treat rows as raw journal lines grouped by reference")

	return cmd
}

func runImport(cmd *cobra.Command, workspace, path string, grouped bool) error {
	logger := logging.New()

	// The engine only ever sees fully read text; file I/O stays here.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc := tabular.ParseDocument(string(data))
	out := cmd.OutOrStdout()

	if grouped {
		res := importer.MaterializeGrouped(doc)
		if len(res.Entries) == 0 {
			fmt.Fprintln(out, "no valid data found")
			return nil
		}
		logger.Info().Str("file", path).Int("rows", res.Rows).Int("skipped", res.Skipped).
			Int("entries", len(res.Entries)).Msg("grouped import finished")
		for _, entry := range res.Entries {
			printEntry(out, entry)
		}
		fmt.Fprintf(out, "%d entries from %d rows (%d skipped)\n", len(res.Entries), res.Rows, res.Skipped)
		return nil
	}

	cfg, chart, err := loadWorkspace(workspace)
	if err != nil {
		return err
	}

	res := importer.Materialize(doc)
	if res.Imported == 0 {
		fmt.Fprintln(out, "no valid data found")
		return nil
	}

	txStore := store.New()
	txStore.AppendBatch(res.Transactions)

	entries := newLedger(cfg, chart).DeriveAll(txStore.All())
	logger.Info().Str("file", path).Int("imported", res.Imported).Int("skipped", res.Skipped).
		Msg("import finished")

	for _, entry := range entries {
		printEntry(out, entry)
	}
	fmt.Fprintf(out, "%d transactions imported, %d rows skipped\n", res.Imported, res.Skipped)
	return nil
}
