package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Statistics commands (require credentials)",
	}

	cmd.AddCommand(newStatsLifetimeCmd())
	cmd.AddCommand(newStatsGameCmd())

	return cmd
}

func newStatsLifetimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lifetime",
		Short: "Show lifetime per-player statistics across all snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LifetimeStat
			if err := client.Get("/api/v1/stats/lifetime", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newStatsGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game <snapshot-id>",
		Short: "Show per-player net values for one saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []PlayerNet
			if err := client.Get("/api/v1/stats/games/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
