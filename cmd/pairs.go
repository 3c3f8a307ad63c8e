package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pairsrender "github.com/bnema/pairup/internal/adapters/render/pairs"
	"github.com/bnema/pairup/internal/application"
	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/pairing"
)

func newPairsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Plan and record pair rotations",
	}

	cmd.AddCommand(
		newPairsPlanCmd(app),
		newPairsRotateCmd(app),
	)

	return cmd
}

func newPairsPlanCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the next rotation without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := app.rotation.Plan(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, newPlanOutput(plan))
			}
			return writePlan(cmd, app, plan, pairsrender.RenderOptions{Title: "Next rotation (preview)", Date: app.now()})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPairsRotateCmd(app *app) *cobra.Command {
	var asJSON, noNotify bool

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Record the next rotation and announce it on Slack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notify := !noNotify && app.rotation.CanNotify()
			if !noNotify && !notify {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "slack is not configured (notify.slack.channel), skipping announcement")
			}

			var rotation application.Rotation
			rotate := func(ctx context.Context) error {
				var err error
				rotation, err = app.rotation.Rotate(ctx, application.RotateCommand{Notify: notify})
				return err
			}

			var err error
			if notify {
				err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Posting pairs to Slack...", rotate)
			} else {
				err = rotate(cmd.Context())
			}
			if err != nil {
				if len(rotation.Sessions) > 0 {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "rotation for %s was saved but not announced\n", rotation.Date.Format(time.DateOnly))
				}
				return err
			}

			if asJSON {
				out := newPlanOutput(rotation.Plan)
				out.Date = rotation.Date.Format(time.DateOnly)
				out.Notified = rotation.Notified
				for _, session := range rotation.Sessions {
					out.SessionIDs = append(out.SessionIDs, session.ID)
				}
				return writeJSON(cmd, out)
			}
			return writePlan(cmd, app, rotation.Plan, pairsrender.RenderOptions{Title: "Rotation recorded", Date: rotation.Date})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Record the rotation without posting to Slack")

	return cmd
}

type memberOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slack string `json:"slack,omitempty"`
}

type pairOutput struct {
	Members []memberOutput `json:"members"`
	Repeats int            `json:"repeats"`
}

type planOutput struct {
	Date       string         `json:"date,omitempty"`
	Pairs      []pairOutput   `json:"pairs"`
	Unpaired   []memberOutput `json:"unpaired"`
	Absent     []memberOutput `json:"absent"`
	Score      int            `json:"score"`
	Exhaustive bool           `json:"exhaustive"`
	Expansions int            `json:"expansions"`
	SessionIDs []string       `json:"session_ids,omitempty"`
	Notified   bool           `json:"notified,omitempty"`
}

func newPlanOutput(plan pairing.Plan) planOutput {
	out := planOutput{
		Pairs:      make([]pairOutput, 0, len(plan.Pairs)),
		Unpaired:   toMemberOutputs(plan.Unpaired),
		Absent:     toMemberOutputs(plan.Absent),
		Score:      plan.Score,
		Exhaustive: plan.Exhaustive,
		Expansions: plan.Expansions,
	}
	for i, pair := range plan.Pairs {
		p := pairOutput{Members: toMemberOutputs(pair.Members())}
		if i < len(plan.Repeats) {
			p.Repeats = plan.Repeats[i]
		}
		out.Pairs = append(out.Pairs, p)
	}
	return out
}

func toMemberOutputs(members []domain.Member) []memberOutput {
	out := make([]memberOutput, 0, len(members))
	for _, member := range members {
		out = append(out, memberOutput{ID: string(member.ID), Name: member.Name, Slack: member.Slack})
	}
	return out
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func writePlan(cmd *cobra.Command, app *app, plan pairing.Plan, opts pairsrender.RenderOptions) error {
	rendered, err := app.renderPlan(plan, opts)
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
