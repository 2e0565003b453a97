package cmd

import (
	"context"
	"fmt"

	"stack-manager/core/reconcile"
	"stack-manager/feature/stacks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// stacksCmd is the parent command for all stack maintenance operations.
var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Maintain photo stacks (consolidate, prune, primary, audit)",
	Long: `Keep stacks in the photo library consistent.

Every operation fetches a fresh snapshot, prints a plan and asks for
confirmation before changing anything.

Examples:
  # Show what a full run would do
  stacks run --dry-run

  # Merge duplicate captures into stacks, asking before applying
  stacks consolidate

  # Full pipeline, non-interactive
  stacks run --yes`,
}

var stepDescriptions = []struct {
	step  stacks.Step
	short string
}{
	{stacks.StepConsolidate, "Stack assets sharing a filename and capture time"},
	{stacks.StepPrune, "Delete stacks holding a single asset"},
	{stacks.StepPrimary, "Make the lowest resolution member each stack's primary"},
	{stacks.StepAudit, "Remove non-primary stack members from albums"},
}

func init() {
	for _, d := range stepDescriptions {
		steps := []stacks.Step{d.step}
		stacksCmd.AddCommand(&cobra.Command{
			Use:   string(d.step),
			Short: d.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStacks(cmd.Context(), steps)
			},
		})
	}

	stacksCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run consolidate, prune, primary and audit in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStacks(cmd.Context(), stacks.Pipeline)
		},
	})

	stacksCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	stacksCmd.PersistentFlags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(stacksCmd)
}

func runStacks(ctx context.Context, steps []stacks.Step) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, client, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	exporter, err := newExporter(cfg.Storage, l)
	if err != nil {
		return err
	}

	svc := stacks.NewService(client, l, exporter)
	opts := reconcile.Options{
		DryRun:    dryRun,
		Confirmed: false, // Set per step by the confirmation prompt
	}

	results, err := svc.Run(ctx, steps, opts, confirmDestructiveAction)
	if err != nil {
		return fmt.Errorf("stack maintenance failed after %d step(s): %w", len(results), err)
	}

	executed := 0
	for _, r := range results {
		executed += r.Executed
	}
	l.Info("Stack maintenance finished", zap.Int("steps", len(results)), zap.Int("executed", executed))
	return nil
}
