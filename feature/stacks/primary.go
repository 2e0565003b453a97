package stacks

import (
	"fmt"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"
)

// SelectPrimary returns the member with the smallest EXIF area (width × height).
// Members without both dimensions are not candidates; ok is false when no
// member is. Ties go to the first member in order.
func SelectPrimary(members []photos.Asset) (assetID string, ok bool) {
	var best int64
	for _, asset := range members {
		w, h, has := asset.Dimensions()
		if !has {
			continue
		}
		area := int64(w) * int64(h)
		if !ok || area < best {
			assetID, best, ok = asset.ID, area, true
		}
	}
	return assetID, ok
}

// PlanPrimaries returns an update_primary action for every stack of two or
// more members whose lowest-resolution member is not already its primary.
func PlanPrimaries(stacks []photos.Stack) []reconcile.Action {
	var actions []reconcile.Action
	for _, stack := range stacks {
		if len(stack.Assets) < 2 {
			continue
		}
		selected, ok := SelectPrimary(stack.Assets)
		if !ok || selected == stack.PrimaryAssetID {
			continue
		}
		actions = append(actions, reconcile.Action{
			Type:     reconcile.ActionUpdatePrimary,
			StackID:  stack.ID,
			AssetIDs: []string{selected},
			Reason:   fmt.Sprintf("lowest resolution member %s replaces primary %q", describe(stack.Assets, selected), stack.PrimaryAssetID),
		})
	}
	return actions
}

// describe formats an asset of members as "id (file WxH)".
func describe(members []photos.Asset, id string) string {
	for _, a := range members {
		if a.ID == id {
			return fmt.Sprintf("%s (%s %s)", a.ID, photos.PathBase(a.OriginalPath), a.Resolution())
		}
	}
	return id
}
