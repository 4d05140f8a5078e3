package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(saveLocationCmd())
	cmd.AddCommand(autoSaveCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
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

			month := state.Meta.Month
			if month == "" {
				month = "(not set)"
			}
			fmt.Printf("Month:             %s\n", month)
			fmt.Printf("Base budget:       %s\n", formatMoney(state.Meta.BaseBudget))
			fmt.Printf("Save location:     %s\n", state.Meta.SaveLocation)
			fmt.Printf("Auto-save to file: %t\n", state.Meta.AutoSaveToFile)
			return nil
		},
	}
}

func saveLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-location <local|download>",
		Short: "Set where exported snapshots go",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			meta, err := svc.SetSaveLocation(ctx, model.SaveLocation(args[0]))
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Save location set to %s", meta.SaveLocation)))
			return nil
		},
	}
}

func autoSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto-save <on|off>",
		Short: "Toggle JSON snapshot export on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("expected 'on' or 'off', got %q", args[0])
			}

			svc, store, err := initService()
			if err != nil {
				return err
			}
			defer store.Close()

			meta, err := svc.SetAutoSaveToFile(ctx, enabled)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Auto-save to file: %t", meta.AutoSaveToFile)))
			return nil
		},
	}
}
