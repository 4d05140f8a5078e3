package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
)

func transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Move budget capacity between expense categories",
		Long: `Move spending capacity from one expense category's limit to another's.
The transfer is capped by the source's unspent amount (limit minus what has
already been spent this month); past transactions stay where they are.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			from, err := resolveCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}
			to, err := resolveCategory(ctx, svc, args[1])
			if err != nil {
				return err
			}

			result, err := svc.TransferBetweenCategories(ctx, from.ID, to.ID, amount)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Moved %s from %q to %q",
				formatMoney(amount), result.From.Name, result.To.Name)))
			fmt.Printf("  %s limit: %s\n", result.From.Name, formatMoney(result.From.LimitValue()))
			fmt.Printf("  %s limit: %s\n", result.To.Name, formatMoney(result.To.LimitValue()))
			return nil
		},
	}
}
