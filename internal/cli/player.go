package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerRebuyCmd())
	cmd.AddCommand(newPlayerCutCmd())
	cmd.AddCommand(newPlayerPayoutCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name string
	var buyIn int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player with an initial buy-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": name, "buy_in": buyIn}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&buyIn, "buy-in", 0, "Initial buy-in amount (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("buy-in")

	return cmd
}

func newPlayerRenameCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <player-id>",
		Short: "Rename a player (updates their past transactions too)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result Player

			path := fmt.Sprintf("/api/v1/players/%s/name", args[0])
			if err := client.Patch(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster (history and pot are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Player removed")
			return nil
		},
	}
}

func newPlayerRebuyCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "rebuy <player-id>",
		Short: "Record a rebuy for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return performTransaction(args[0], "rebuy", amount)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Rebuy amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPlayerCutCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "cut <player-id>",
		Short: "Cut chips from a player's stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return performTransaction(args[0], "cut", amount)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Cut amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func performTransaction(playerID, txType string, amount int) error {
	req := map[string]any{"type": txType, "amount": amount}
	var result Transaction

	path := fmt.Sprintf("/api/v1/players/%s/transactions", playerID)
	if err := client.Post(path, req, &result); err != nil {
		return err
	}

	NewOutput(cfg.Output).Print(result)
	return nil
}

func newPlayerPayoutCmd() *cobra.Command {
	var adjustment int

	cmd := &cobra.Command{
		Use:   "payout <player-id>",
		Short: "Apply a payout adjustment (may be negative)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"adjustment": adjustment}
			var result Transaction

			path := fmt.Sprintf("/api/v1/players/%s/payout", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&adjustment, "adjustment", 0, "Chip adjustment, positive or negative (required)")
	_ = cmd.MarkFlagRequired("adjustment")

	return cmd
}
