package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionResetCmd())

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session aggregate",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the active game (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/session/reset", nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Game reset")
			return nil
		},
	}
}
