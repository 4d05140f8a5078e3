package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/budget"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/export"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Manage transactions",
		Long:    `Log, edit, delete, and list the month's income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := svc.State(ctx)
			if err != nil {
				return fmt.Errorf("failed to get state: %w", err)
			}

			if len(state.Transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions yet. Use 'pinch tx add' to log one."))
				return nil
			}

			names := make(map[string]string, len(state.Categories))
			for _, cat := range state.Categories {
				names[cat.ID] = cat.Name
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"))

			for _, tx := range state.Transactions {
				name, ok := names[tx.CategoryID]
				if !ok {
					name = cli.SubtleStyle.Render(export.UncategorizedName)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID, tx.Date, formatMoney(tx.Amount), tx.Type, name, tx.Description)
			}
			return nil
		},
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		date           string
		description    string
		categoryRef    string
		txType         string
		transferFrom   string
		transferAmount float64
		increaseBudget float64
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Log a transaction",
		Long: `Log a transaction. An expense that would push its category over its limit,
or total spending over the base budget, is not committed until you pick a
remedy: move capacity from another category (--transfer-from), raise the
base budget (--increase-budget), or force the overrun through (--force).
With none of those the operation is cancelled and nothing is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			input := budget.NewTransaction{
				Date:        date,
				Amount:      amount,
				Type:        model.CategoryType(txType),
				Description: description,
			}
			if categoryRef != "" {
				category, resolveErr := resolveCategory(ctx, svc, categoryRef)
				if resolveErr != nil {
					return resolveErr
				}
				input.CategoryID = category.ID
			}

			plan, err := svc.PlanTransaction(ctx, input)
			if err != nil {
				return err
			}

			var override *budget.Override
			switch {
			case transferFrom != "":
				donor, resolveErr := resolveCategory(ctx, svc, transferFrom)
				if resolveErr != nil {
					return resolveErr
				}
				moved := transferAmount
				if moved == 0 {
					moved = plan.CategoryShortfall
				}
				override = &budget.Override{TransferFromID: donor.ID, TransferAmount: moved}
			case increaseBudget > 0:
				override = &budget.Override{IncreaseBudgetBy: increaseBudget}
			case plan.NeedsOverride() && !force:
				printOverrunWarning(plan)
				return fmt.Errorf("transaction cancelled; nothing was saved")
			}

			tx, err := svc.CommitTransaction(ctx, input, override)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged %s of %s on %s",
				tx.Type, formatMoney(tx.Amount), tx.Date)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&categoryRef, "category", "", "category id or name")
	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (expense, income)")
	cmd.Flags().StringVar(&transferFrom, "transfer-from", "", "fund the overrun from this category's unspent capacity")
	cmd.Flags().Float64Var(&transferAmount, "transfer-amount", 0, "capacity to move (defaults to the shortfall)")
	cmd.Flags().Float64Var(&increaseBudget, "increase-budget", 0, "raise the base budget by this amount first")
	cmd.Flags().BoolVar(&force, "force", false, "commit even though a limit or the budget is exceeded")

	return cmd
}

func printOverrunWarning(plan budget.Plan) {
	if plan.ExceedsCategoryLimit {
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"This expense exceeds the category limit by %s", formatMoney(plan.CategoryShortfall))))
	}
	if plan.ExceedsBaseBudget {
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"This expense pushes total spending %s over the base budget", formatMoney(plan.BudgetShortfall))))
	}
	if len(plan.Donors) > 0 {
		fmt.Println(cli.SubtleStyle.Render("Categories with unspent capacity:"))
		for _, donor := range plan.Donors {
			fmt.Printf("  %s (%s available)\n", donor.Category.Name, formatMoney(donor.Available))
		}
	}
	fmt.Println(cli.SubtleStyle.Render("Re-run with --transfer-from, --increase-budget, or --force."))
}

func editTransactionCmd() *cobra.Command {
	var (
		date        string
		amount      float64
		description string
		categoryRef string
		txType      string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			var patch budget.TransactionPatch
			if cmd.Flags().Changed("date") {
				patch.Date = &date
			}
			if cmd.Flags().Changed("amount") {
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("type") {
				t := model.CategoryType(txType)
				patch.Type = &t
			}
			if cmd.Flags().Changed("category") {
				category, resolveErr := resolveCategory(ctx, svc, categoryRef)
				if resolveErr != nil {
					return resolveErr
				}
				patch.CategoryID = &category.ID
			}

			updated, err := svc.EditTransaction(ctx, args[0], patch)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("no transaction with id %q", args[0])
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", updated.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&categoryRef, "category", "", "new category id or name")
	cmd.Flags().StringVar(&txType, "type", "", "new type (expense, income)")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %s", args[0])))
			return nil
		},
	}
}
