package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data",
		Long: `Wipe the entire persisted state: month, budget, categories, and
transactions. The next command starts from a blank slate.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Println(cli.FormatWarning("This deletes everything. Re-run with --force to confirm."))
				return nil
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.ClearAllData(ctx); err != nil {
				return err
			}
			common.LogInfo("wiped all persisted data", common.Fields{"forced": force})

			fmt.Println(cli.FormatSuccess("All data deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation")
	return cmd
}
