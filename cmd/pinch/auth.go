package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/cli"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/config"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/sheets"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}

	cmd.AddCommand(authSheetsCmd())
	return cmd
}

func authSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Run the browser OAuth2 flow for Google Sheets and cache the token for
later 'pinch export sheets' runs. Requires sheets.client_id and
sheets.client_secret in the config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			clientID := viper.GetString("sheets.client_id")
			clientSecret := viper.GetString("sheets.client_secret")
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("%w: sheets.client_id and sheets.client_secret must be set", common.ErrMissingConfig)
			}

			tokenFile := viper.GetString("sheets.token_file")
			if tokenFile == "" {
				tokenFile = "~/.config/pinch/sheets-token.json"
			}

			token, err := sheets.AuthenticateInteractive(ctx, sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    config.ExpandPath(tokenFile),
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Authenticated with Google Sheets"))
			if token.RefreshToken != "" {
				fmt.Println(cli.SubtleStyle.Render("Refresh token cached; exports will not prompt again."))
			}
			return nil
		},
	}
}
