package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/config"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the state from a JSON export",
		Long: `Replace the entire persisted state with the contents of a JSON export.
There is no merge: whatever is in the file becomes the new state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw, err := os.ReadFile(config.ExpandPath(args[0])) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := svc.ImportState(ctx, raw)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported state: %d categories, %d transactions",
				len(state.Categories), len(state.Transactions))))
			return nil
		},
	}
}
