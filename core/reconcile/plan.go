package reconcile

import (
	"context"
	"fmt"
	"time"

	"stack-manager/core/photos"

	"github.com/google/uuid"
)

// Mutator is the subset of the Photo Service used to execute a plan.
// photos.Client satisfies it.
type Mutator interface {
	CreateStack(ctx context.Context, assetIDs []string) (*photos.Stack, error)
	UpdateStackPrimary(ctx context.Context, stackID, assetID string) (*photos.Stack, error)
	DeleteStack(ctx context.Context, stackID string) error
	RemoveAssetsFromAlbum(ctx context.Context, albumID string, assetIDs []string) error
	UpdateAlbumOrder(ctx context.Context, albumID, order string) error
}

// NewPlan builds a plan for a step and computes its summary.
func NewPlan(step string, inspected int, actions []Action, issues []Issue) *Plan {
	if actions == nil {
		actions = []Action{}
	}

	summary := PlanSummary{
		Inspected: inspected,
		Issues:    len(issues),
		Actions:   make(map[ActionType]int),
	}
	for _, issue := range issues {
		if !issue.Resolved {
			summary.Unresolved++
		}
	}
	for _, action := range actions {
		summary.Actions[action.Type]++
	}

	return &Plan{
		RunID:     uuid.NewString(),
		Step:      step,
		CreatedAt: time.Now().UTC(),
		Actions:   actions,
		Issues:    issues,
		Summary:   summary,
	}
}

// ApplyPlan executes the actions in a plan, in order.
// Returns the number of actions executed and the first error encountered;
// actions after a failure are not attempted.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, m Mutator, plan *Plan, opts Options) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if err := applyAction(ctx, m, action); err != nil {
			return executed, fmt.Errorf("action %d/%d (%s) failed: %w", executed+1, len(plan.Actions), action.Type, err)
		}
		executed++
	}

	return executed, nil
}

func applyAction(ctx context.Context, m Mutator, action Action) error {
	switch action.Type {
	case ActionCreateStack:
		_, err := m.CreateStack(ctx, action.AssetIDs)
		return err
	case ActionUpdatePrimary:
		if len(action.AssetIDs) != 1 {
			return fmt.Errorf("update_primary for stack %s needs exactly one asset, got %d", action.StackID, len(action.AssetIDs))
		}
		_, err := m.UpdateStackPrimary(ctx, action.StackID, action.AssetIDs[0])
		return err
	case ActionDeleteStack:
		return m.DeleteStack(ctx, action.StackID)
	case ActionRemoveFromAlbum:
		return m.RemoveAssetsFromAlbum(ctx, action.AlbumID, action.AssetIDs)
	case ActionOrderAlbum:
		return m.UpdateAlbumOrder(ctx, action.AlbumID, action.Order)
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
}
