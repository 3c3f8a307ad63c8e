package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pairup/internal/application"
	"github.com/bnema/pairup/internal/domain"
)

func newMemberCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage the team roster",
	}

	cmd.AddCommand(
		newMemberListCmd(app),
		newMemberAddCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roster members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			members, err := app.roster.ListMembers(cmd.Context())
			if err != nil {
				return err
			}

			if len(members) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no members yet, add one with `pairup member add`")
				return nil
			}
			for _, member := range members {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", member.ID, member.Name, member.Slack)
			}

			return nil
		},
	}
}

func newMemberAddCmd(app *app) *cobra.Command {
	var input application.AddMemberCommand
	var id string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a member to the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.ID = domain.MemberID(id)
			member, err := app.roster.AddMember(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added member %s (%s)\n", member.Name, member.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Slack, "slack", "", "Slack handle")
	cmd.Flags().StringVar(&id, "id", "", "Stable member ID (default: generated)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMemberRemoveCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a member from the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.roster.RemoveMember(cmd.Context(), domain.MemberID(id)); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed member %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Member ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
