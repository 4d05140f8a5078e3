package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/budget"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the month's budget position",
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

			summary := budget.Summarize(state)

			month := state.Meta.Month
			if month == "" {
				month = "(no month set)"
			}
			fmt.Println(cli.FormatTitle(fmt.Sprintf("Budget for %s", month)))

			fmt.Printf("Base budget:   %s\n", formatMoney(state.Meta.BaseBudget))
			fmt.Printf("Total income:  %s\n", formatMoney(summary.TotalIncome))
			fmt.Printf("Total expense: %s (%.0f%% of budget)\n", formatMoney(summary.TotalExpense), summary.PercentSpent*100)
			fmt.Printf("Remaining:     %s\n", formatMoney(summary.Remaining))

			if summary.Unallocated < 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf(
					"Category limits exceed the base budget by %s", formatMoney(-summary.Unallocated))))
			} else {
				fmt.Printf("Unallocated:   %s\n", formatMoney(summary.Unallocated))
			}

			if len(summary.Categories) == 0 {
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Limit"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Used"))

			for _, cs := range summary.Categories {
				if !cs.Category.IsExpense() {
					fmt.Fprintf(w, "%s\t%s\t-\t%s\t-\n",
						cs.Category.Name, cs.Category.Type, formatMoney(cs.Spent))
					continue
				}
				used := fmt.Sprintf("%.0f%%", cs.Percent*100)
				if cs.Available < 0 {
					used = cli.ErrorStyle.Render(used)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cs.Category.Name, cs.Category.Type,
					formatMoney(cs.Category.LimitValue()), formatMoney(cs.Spent), used)
			}
			return nil
		},
	}
}
