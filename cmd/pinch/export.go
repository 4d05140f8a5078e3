package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/config"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/export"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the budget state",
	}

	cmd.AddCommand(exportJSONCmd())
	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportSheetsCmd())

	return cmd
}

func exportJSONCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export the full state as JSON",
		Long:  `Dump the entire persisted state as JSON, suitable for 'pinch import'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFileExport(cmd, output, export.JSON)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions as CSV",
		Long:  `Write one row per transaction: date, amount, type, category name, description.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFileExport(cmd, output, export.CSV)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func runFileExport(cmd *cobra.Command, output string, render func(w io.Writer, state *model.AppState) error) error {
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

	out := os.Stdout
	if output != "" {
		f, createErr := os.Create(config.ExpandPath(output))
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer f.Close()
		out = f
	}

	if err := render(out, state); err != nil {
		return err
	}

	if output != "" {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported to %s", output)))
	}
	return nil
}

func exportSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Export the budget report to Google Sheets",
		Long: `Write the month's summary, category positions, and transactions to a
Google Sheets spreadsheet. Configure credentials under the 'sheets' section
of the config file or GOOGLE_SHEETS_* environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sheetsConfig, err := config.LoadSheetsConfig()
			if err != nil {
				return fmt.Errorf("sheets configuration: %w", err)
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := svc.State(ctx)
			if err != nil {
				return fmt.Errorf("failed to get state: %w", err)
			}

			writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
			if err != nil {
				return err
			}

			if err := writer.Write(ctx, state); err != nil {
				return common.NewUserError("spreadsheet export failed; check credentials and spreadsheet access", err)
			}

			fmt.Println(cli.FormatSuccess("Exported budget report to Google Sheets"))
			return nil
		},
	}
}
