package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotifyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Configure rotation announcements",
	}

	token := &cobra.Command{
		Use:   "token",
		Short: "Manage the Slack bot token",
	}
	token.AddCommand(
		newNotifyTokenSetCmd(app),
		newNotifyTokenRemoveCmd(app),
	)
	cmd.AddCommand(token)

	return cmd
}

func newNotifyTokenSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the Slack bot token (pass, or a private file when pass is missing)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.tokens.SetSlackToken(cmd.Context(), value); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "slack token stored")
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Bot token (xoxb-...)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newNotifyTokenRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Forget the stored Slack bot token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.tokens.RemoveSlackToken(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "slack token removed")
			return err
		},
	}
}
