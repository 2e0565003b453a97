package stacks

import (
	"fmt"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"
)

// Violation is an album exposing more than one member of the same stack.
type Violation struct {
	AlbumID   string `json:"album_id"`
	AlbumName string `json:"album_name"`
	StackID   string `json:"stack_id"`

	// Assets are the stack members present in the album, in album order.
	Assets []photos.Asset `json:"assets"`

	// PrimaryAssetID is the stack's primary; empty when unknown.
	PrimaryAssetID string `json:"primary_asset_id,omitempty"`

	// ToRemove are the members other than the primary. Empty when the
	// primary is unknown, since there is no way to tell which one to keep.
	ToRemove []string `json:"to_remove,omitempty"`
}

// Resolved reports whether a removal fixes the violation.
func (v Violation) Resolved() bool {
	return len(v.ToRemove) > 0
}

// AuditAlbum groups an album's assets by stack and returns one Violation per
// stack contributing more than one asset, in order of first appearance.
// Unstacked assets are ignored.
func AuditAlbum(album photos.AlbumSummary, assets []photos.Asset, catalog *Catalog) []Violation {
	index := make(map[string]int)
	var byStack []Violation

	for _, asset := range assets {
		stackID, ok := catalog.StackOf(asset.ID)
		if !ok {
			continue
		}
		i, seen := index[stackID]
		if !seen {
			i = len(byStack)
			index[stackID] = i
			byStack = append(byStack, Violation{AlbumID: album.ID, AlbumName: album.AlbumName, StackID: stackID})
		}
		byStack[i].Assets = append(byStack[i].Assets, asset)
	}

	var violations []Violation
	for _, v := range byStack {
		if len(v.Assets) < 2 {
			continue
		}
		if primary, ok := catalog.PrimaryOf(v.StackID); ok {
			v.PrimaryAssetID = primary
			for _, a := range v.Assets {
				if a.ID != primary {
					v.ToRemove = append(v.ToRemove, a.ID)
				}
			}
		}
		violations = append(violations, v)
	}
	return violations
}

// PlanAlbumRepairs returns one remove_from_album action per resolvable
// violation, removing exactly its non-primary members.
func PlanAlbumRepairs(violations []Violation) []reconcile.Action {
	var actions []reconcile.Action
	for _, v := range violations {
		if !v.Resolved() {
			continue
		}
		ids := make([]string, len(v.ToRemove))
		copy(ids, v.ToRemove)
		actions = append(actions, reconcile.Action{
			Type:     reconcile.ActionRemoveFromAlbum,
			AlbumID:  v.AlbumID,
			AssetIDs: ids,
			Reason: fmt.Sprintf("album %q shows %d assets of stack %s, keeping primary %s",
				v.AlbumName, len(v.Assets), v.StackID, v.PrimaryAssetID),
		})
	}
	return actions
}

// issue converts a violation for plan reporting.
func (v Violation) issue() reconcile.Issue {
	detail := fmt.Sprintf("album %q has %d assets from stack %s", v.AlbumName, len(v.Assets), v.StackID)
	if v.PrimaryAssetID == "" {
		detail += " (no known primary, left unresolved)"
	}
	return reconcile.Issue{
		Key:      v.AlbumID + "/" + v.StackID,
		Detail:   detail,
		Resolved: v.Resolved(),
	}
}
