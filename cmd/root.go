package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pairup",
		Short:         "pairup: rotate pair programming partners",
		Long:          "pairup keeps a team roster, proposes pairs that avoid repeating past pairings, records each rotation and can announce it on Slack.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newMemberCmd(app),
		newAbsenceCmd(app),
		newSessionCmd(app),
		newPairsCmd(app),
		newNotifyCmd(app),
	)

	return rootCmd
}
