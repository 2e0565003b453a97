package stacks

import (
	"fmt"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"
)

// PlanPrune returns a delete_stack action for every stack with exactly one member.
func PlanPrune(stacks []photos.Stack) []reconcile.Action {
	var actions []reconcile.Action
	for _, stack := range stacks {
		if len(stack.Assets) != 1 {
			continue
		}
		asset := stack.Assets[0]
		actions = append(actions, reconcile.Action{
			Type:    reconcile.ActionDeleteStack,
			StackID: stack.ID,
			Reason: fmt.Sprintf("single asset %s (%s, %s, %s)",
				asset.ID, photos.PathBase(asset.OriginalPath), asset.DateTimeOriginal(), asset.Resolution()),
		})
	}
	return actions
}
