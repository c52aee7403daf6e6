package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/currency"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/id"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
)

func newAddCommand() *cobra.Command {
	var (
		workspace   string
		date        string
		description string
		amount      string
		category    string
		reference   string
		contra      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one transaction and show its journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseCategory(category)
			if err != nil {
				return err
			}

			cfg, chart, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			tx := model.Transaction{
				ID:            id.NewTransactionID(),
				Date:          date,
				Description:   description,
				Category:      cat,
				Amount:        currency.Normalize(amount),
				Reference:     reference,
				ContraAccount: contra,
			}

			entry := newLedger(cfg, chart).Derive(tx)
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount, e.g. \"Rp 450.000\" or \"(150.000)\" (required)")
	cmd.Flags().StringVar(&category, "category", "", "revenue|expense|asset|liability|equity (required)")
	cmd.Flags().StringVar(&reference, "reference", "", "external document reference")
	cmd.Flags().StringVar(&contra, "contra", "", "contra account code, e.g. 2000 for Accounts Payable")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func parseCategory(s string) (model.TransactionCategory, error) {
	switch model.TransactionCategory(s) {
	case model.CategoryRevenue, model.CategoryExpense, model.CategoryAsset,
		model.CategoryLiability, model.CategoryEquity:
		return model.TransactionCategory(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
