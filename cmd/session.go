package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect recorded pair sessions",
	}

	cmd.AddCommand(newSessionListCmd(app))

	return cmd
}

func newSessionListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.roster.History(cmd.Context())
			if err != nil {
				return err
			}

			for _, entry := range entries {
				names := make([]string, 0, len(entry.Session.Members))
				for _, member := range entry.Session.Members {
					names = append(names, member.DisplayName())
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					entry.Session.Date.Format(time.DateOnly), entry.Session.Status, strings.Join(names, " & "))
			}

			return nil
		},
	}
}
