package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/pairup/internal/application"
	"github.com/bnema/pairup/internal/domain"
)

func newAbsenceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Record when members are away",
	}

	cmd.AddCommand(
		newAbsenceListCmd(app),
		newAbsenceAddCmd(app),
	)

	return cmd
}

func newAbsenceListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded absences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			absences, err := app.roster.ListAbsences(cmd.Context())
			if err != nil {
				return err
			}

			now := app.now()
			for _, absence := range absences {
				marker := ""
				if absence.Covers(now) {
					marker = "\taway now"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s%s\n",
					absence.ID, absence.MemberID, formatWhen(absence.Start), formatWhen(absence.End), marker)
			}

			return nil
		},
	}
}

func newAbsenceAddCmd(app *app) *cobra.Command {
	var memberID, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an absence window (inclusive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startAt, err := parseWhen(start, false)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endAt, err := parseWhen(end, true)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			absence, err := app.roster.AddAbsence(cmd.Context(), application.AddAbsenceCommand{
				MemberID: domain.MemberID(memberID),
				Start:    startAt,
				End:      endAt,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded absence %s for %s\n", absence.ID, absence.MemberID)
			return err
		},
	}

	cmd.Flags().StringVar(&memberID, "member", "", "Member ID")
	cmd.Flags().StringVar(&start, "start", "", "First day away (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "Last day away (YYYY-MM-DD or RFC3339)")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// parseWhen accepts RFC3339 or a bare date. A bare end date covers the whole day.
func parseWhen(raw string, endOfDay bool) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}

	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC3339, got %q", raw)
	}
	if endOfDay {
		return day.Add(24*time.Hour - time.Second), nil
	}
	return day, nil
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
