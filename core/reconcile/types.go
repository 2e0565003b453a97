package reconcile

import "time"

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreateStack creates a stack from a duplicate group.
	ActionCreateStack ActionType = "create_stack"
	// ActionUpdatePrimary changes the primary asset of a stack.
	ActionUpdatePrimary ActionType = "update_primary"
	// ActionDeleteStack deletes a stack, keeping its assets.
	ActionDeleteStack ActionType = "delete_stack"
	// ActionRemoveFromAlbum removes assets from an album, keeping the assets.
	ActionRemoveFromAlbum ActionType = "remove_from_album"
	// ActionOrderAlbum changes the sort order of an album.
	ActionOrderAlbum ActionType = "order_album"
)

// Action represents a planned mutation operation against the Photo Service.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// StackID is the target stack for update_primary and delete_stack.
	StackID string `json:"stack_id,omitempty"`

	// AlbumID is the target album for remove_from_album and order_album.
	AlbumID string `json:"album_id,omitempty"`

	// AssetIDs are the assets to stack (create_stack), the new primary
	// (update_primary, single element) or the assets to remove from an album.
	AssetIDs []string `json:"asset_ids,omitempty"`

	// Order is the target sort order for order_album.
	Order string `json:"order,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Issue is a finding reported by a plan, whether or not an action resolves it.
type Issue struct {
	// Key identifies the finding (e.g. "album/stack").
	Key string `json:"key"`

	// Detail describes the finding.
	Detail string `json:"detail"`

	// Resolved is true when the plan contains an action that fixes it.
	Resolved bool `json:"resolved"`
}

// Plan contains the actions computed from one snapshot of the Photo Service.
type Plan struct {
	// RunID uniquely identifies this plan.
	RunID string `json:"run_id"`

	// Step is the name of the step that produced the plan.
	Step string `json:"step"`

	// CreatedAt is when the plan was computed.
	CreatedAt time.Time `json:"created_at"`

	// Actions contains planned mutation operations, in execution order.
	Actions []Action `json:"actions"`

	// Issues contains findings, including those no action can resolve.
	Issues []Issue `json:"issues,omitempty"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Inspected is the number of entities looked at (assets, stacks or albums).
	Inspected int `json:"inspected"`

	// Issues counts reported findings.
	Issues int `json:"issues"`

	// Unresolved counts findings no action resolves.
	Unresolved int `json:"unresolved"`

	// Actions counts planned actions per type.
	Actions map[ActionType]int `json:"actions"`
}

// Options controls whether a plan is executed.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the user has confirmed the mutations.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
