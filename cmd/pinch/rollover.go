package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/budget"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
)

func rolloverCmd() *cobra.Command {
	var (
		month      string
		baseBudget float64
		empty      bool
		specs      []string
	)

	cmd := &cobra.Command{
		Use:   "rollover",
		Short: "Start a new month",
		Long: `Close out the current month and start a new one: transactions are cleared
and the month and base budget are set. By default categories carry forward
with their current limits. Pass --empty to start with no categories, or one
or more --category "Name:limit" (or "Name::income") to replace them with a
new set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			if empty && len(specs) > 0 {
				return fmt.Errorf("--empty and --category are mutually exclusive")
			}

			if !empty && len(specs) == 0 {
				state, rollErr := svc.RolloverKeepingCategories(ctx, month, baseBudget)
				if rollErr != nil {
					return rollErr
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf(
					"Started %s with budget %s; kept %d categories",
					month, formatMoney(baseBudget), len(state.Categories))))
				return nil
			}

			categories := make([]budget.NewCategory, 0, len(specs))
			for _, spec := range specs {
				input, parseErr := parseCategorySpec(spec)
				if parseErr != nil {
					return parseErr
				}
				categories = append(categories, input)
			}

			state, err := svc.RolloverWithCategories(ctx, month, baseBudget, categories)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Started %s with budget %s and %d categories",
				month, formatMoney(baseBudget), len(state.Categories))))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "new month (YYYY-MM)")
	cmd.Flags().Float64Var(&baseBudget, "budget", 0, "base budget for the month")
	cmd.Flags().BoolVar(&empty, "empty", false, "start the month with no categories")
	cmd.Flags().StringArrayVar(&specs, "category", nil, `replacement category, "Name:limit" or "Name::income" (repeatable)`)
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func restartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Clear this month's transactions",
		Long:  `Delete all transactions while keeping the month, base budget, and categories.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := svc.ClearTransactions(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Cleared transactions; %d categories kept", len(state.Categories))))
			return nil
		},
	}
}
