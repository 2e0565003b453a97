package stacks

import (
	"fmt"

	"stack-manager/core/photos"
)

// ConsistencyError reports a stack whose primary asset is not one of its members.
type ConsistencyError struct {
	StackID        string
	PrimaryAssetID string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("stack %s: primary asset %s is not a member of the stack", e.StackID, e.PrimaryAssetID)
}

// Catalog indexes stack membership for one run.
// It is built from a fresh stack fetch and never cached across runs.
type Catalog struct {
	assetToStack   map[string]string
	stackToPrimary map[string]string
	stackCount     int
}

// NewCatalog builds the asset→stack and stack→primary lookups in a single
// pass over every stack's members. If an asset is listed under two stacks the
// later stack wins. A non-empty primary that is not a member of its stack is
// returned as a *ConsistencyError.
func NewCatalog(stacks []photos.Stack) (*Catalog, error) {
	c := &Catalog{
		assetToStack:   make(map[string]string),
		stackToPrimary: make(map[string]string, len(stacks)),
		stackCount:     len(stacks),
	}

	for _, stack := range stacks {
		primaryFound := false
		for _, asset := range stack.Assets {
			c.assetToStack[asset.ID] = stack.ID
			if asset.ID == stack.PrimaryAssetID {
				primaryFound = true
			}
		}

		if stack.PrimaryAssetID == "" {
			continue
		}
		if !primaryFound {
			return nil, &ConsistencyError{StackID: stack.ID, PrimaryAssetID: stack.PrimaryAssetID}
		}
		c.stackToPrimary[stack.ID] = stack.PrimaryAssetID
	}

	return c, nil
}

// StackOf returns the stack containing the asset.
func (c *Catalog) StackOf(assetID string) (string, bool) {
	id, ok := c.assetToStack[assetID]
	return id, ok
}

// PrimaryOf returns the primary asset of the stack, if known.
func (c *Catalog) PrimaryOf(stackID string) (string, bool) {
	id, ok := c.stackToPrimary[stackID]
	return id, ok
}

// StackCount is the number of stacks the catalog was built from.
func (c *Catalog) StackCount() int {
	return c.stackCount
}

// AssetCount is the number of stacked assets.
func (c *Catalog) AssetCount() int {
	return len(c.assetToStack)
}
