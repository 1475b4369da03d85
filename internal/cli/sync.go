package cli

import (
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Remote persistence commands",
	}

	cmd.AddCommand(newSyncSaveCmd())
	cmd.AddCommand(newSyncLoadCmd())
	cmd.AddCommand(newSyncSnapshotCmd())
	cmd.AddCommand(newSyncSnapshotsCmd())

	return cmd
}

func newSyncSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the session to the remote document (overwrites prior content)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SyncResult
			if err := client.Post("/api/v1/sync/save", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newSyncLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the remote session document, replacing local state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SyncResult
			if err := client.Post("/api/v1/sync/load", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newSyncSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Save an immutable historical snapshot of the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SnapshotSummary
			if err := client.Post("/api/v1/sync/snapshot", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newSyncSnapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots",
		Short: "List saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []SnapshotSummary
			if err := client.Get("/api/v1/snapshots", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
