package cmd

import (
	"context"
	"fmt"

	"stack-manager/core/reconcile"
	"stack-manager/feature/albums"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var albumOrder string

// albumsCmd is the parent command for album operations.
var albumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "Album maintenance",
}

// albumsOrderCmd sets the display order of every album.
var albumsOrderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show every album oldest first (or newest first with --order desc)",
	Long: `Set the display order of every album that differs from the requested one.

Examples:
  # Report only
  albums order --dry-run

  # Oldest first, non-interactive
  albums order --yes

  # Newest first
  albums order --order desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlbumOrder(cmd.Context())
	},
}

func init() {
	albumsOrderCmd.Flags().StringVar(&albumOrder, "order", albums.DefaultOrder, "Target order: asc or desc")
	albumsOrderCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	albumsOrderCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm changes (non-interactive)")

	albumsCmd.AddCommand(albumsOrderCmd)
	RootCmd.AddCommand(albumsCmd)
}

func runAlbumOrder(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	order, err := albums.ParseOrder(albumOrder)
	if err != nil {
		return err
	}

	_, l, client, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc := albums.NewService(client, l)

	plan, err := svc.Plan(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to plan album order: %w", err)
	}
	reconcile.LogPlan(l, plan)

	if len(plan.Actions) == 0 {
		l.Info("All albums already in order", zap.String("order", order))
		return nil
	}
	if dryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmDestructiveAction(plan) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	executed, err := reconcile.ApplyPlan(ctx, client, plan, reconcile.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply album order: %w", err)
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}
