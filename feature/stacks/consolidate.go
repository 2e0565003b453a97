package stacks

import (
	"fmt"
	"strings"

	"stack-manager/core/reconcile"
)

// unstacked labels members without a stack in action reasons.
const unstacked = "none"

// groupStacks returns the stack of every member.
func groupStacks(group DuplicateGroup, catalog *Catalog) []string {
	stacks := make([]string, len(group.AssetIDs))
	for i, id := range group.AssetIDs {
		stackID, ok := catalog.StackOf(id)
		if !ok {
			stackID = unstacked
		}
		stacks[i] = stackID
	}
	return stacks
}

// IsConsolidated reports whether every member of the group already belongs
// to one and the same stack.
func IsConsolidated(group DuplicateGroup, catalog *Catalog) bool {
	if len(group.AssetIDs) == 0 {
		return false
	}
	first, ok := catalog.StackOf(group.AssetIDs[0])
	if !ok {
		return false
	}
	for _, id := range group.AssetIDs[1:] {
		if stackID, ok := catalog.StackOf(id); !ok || stackID != first {
			return false
		}
	}
	return true
}

// PlanConsolidation returns one create_stack action per group that is not
// already consolidated, with every member of the group, in group order.
// Members already stacked elsewhere are left for the Photo Service to move.
func PlanConsolidation(groups []DuplicateGroup, catalog *Catalog) []reconcile.Action {
	var actions []reconcile.Action
	for _, group := range groups {
		if IsConsolidated(group, catalog) {
			continue
		}
		ids := make([]string, len(group.AssetIDs))
		copy(ids, group.AssetIDs)
		actions = append(actions, reconcile.Action{
			Type:     reconcile.ActionCreateStack,
			AssetIDs: ids,
			Reason: fmt.Sprintf("%s at %s: %d assets, stacks [%s]",
				group.Key.FileName, group.Key.Timestamp, len(ids), strings.Join(groupStacks(group, catalog), ", ")),
		})
	}
	return actions
}
