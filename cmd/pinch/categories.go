package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/budget"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage budget categories",
		Long:  `List, add, update, and remove the income and expense categories transactions are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())
	cmd.AddCommand(setLimitCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
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

			if len(state.Categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories yet. Use 'pinch categories add' to create one."))
				return nil
			}

			summary := budget.Summarize(state)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Limit"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Available"))

			for _, cs := range summary.Categories {
				limit, available := "-", "-"
				if cs.Category.IsExpense() {
					limit = formatMoney(cs.Category.LimitValue())
					available = formatMoney(cs.Available)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					cs.Category.ID, cs.Category.Name, cs.Category.Type,
					limit, formatMoney(cs.Spent), available)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		limit        float64
		categoryType string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long: `Add a new category. Expense categories get a spending limit (default 0);
income categories never have one, so --limit is ignored for them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			input := budget.NewCategory{
				Name: args[0],
				Type: model.CategoryType(categoryType),
			}
			if cmd.Flags().Changed("limit") {
				input.Limit = &limit
			}

			category, err := svc.AddCategory(ctx, input)
			if err != nil {
				return err
			}

			if category.IsExpense() {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s category %q with limit %s",
					category.Type, category.Name, formatMoney(category.LimitValue()))))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s category %q", category.Type, category.Name)))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit (expense categories only)")
	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (expense, income)")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name         string
		limit        float64
		categoryType string
	)

	cmd := &cobra.Command{
		Use:   "update <id-or-name>",
		Short: "Update a category",
		Long: `Update a category's name, type, or limit. Changing a category to income
drops its limit; changing it back to expense restores a limit of 0 unless
one is supplied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			target, err := resolveCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}

			var patch budget.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("limit") {
				patch.Limit = &limit
			}
			if cmd.Flags().Changed("type") {
				t := model.CategoryType(categoryType)
				patch.Type = &t
			}

			updated, err := svc.UpdateCategory(ctx, target.ID, patch)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("category %q no longer exists", args[0])
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %q", updated.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().Float64Var(&limit, "limit", 0, "new spending limit (expense categories only)")
	cmd.Flags().StringVar(&categoryType, "type", "", "new type (expense, income)")

	return cmd
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id-or-name>",
		Short: "Remove a category",
		Long: `Remove a category. Its transactions are kept and shown as uncategorized
from then on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			target, err := resolveCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}

			if err := svc.RemoveCategory(ctx, target.ID); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed category %q", target.Name)))
			return nil
		},
	}
}

func setLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-limit <id-or-name> <limit>",
		Short: "Set an expense category's spending limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			target, err := resolveCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if !target.IsExpense() {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%q is an income category and has no limit", target.Name)))
				return nil
			}

			updated, err := svc.UpdateCategoryLimit(ctx, target.ID, limit)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("category %q no longer exists", args[0])
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set %q limit to %s",
				updated.Name, formatMoney(updated.LimitValue()))))
			return nil
		},
	}
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}
