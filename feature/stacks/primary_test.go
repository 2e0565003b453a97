package stacks

import (
	"testing"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPrimary(t *testing.T) {
	width := 100
	noHeight := photos.Asset{ID: "partial", ExifInfo: &photos.ExifInfo{ExifImageWidth: &width}}

	tests := []struct {
		name    string
		members []photos.Asset
		want    string
		wantOK  bool
	}{
		{"SmallestArea", []photos.Asset{sized("a1", 4000, 3000), sized("a2", 800, 600)}, "a2", true},
		{"TieKeepsFirst", []photos.Asset{sized("a1", 600, 800), sized("a2", 800, 600)}, "a1", true},
		{"SkipsMissingDimensions", []photos.Asset{{ID: "noexif"}, noHeight, sized("a3", 4000, 3000)}, "a3", true},
		{"ZeroAreaWins", []photos.Asset{sized("a1", 10, 10), sized("a2", 0, 500)}, "a2", true},
		{"NoCandidates", []photos.Asset{{ID: "a1"}, noHeight}, "", false},
		{"Empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPrimary(tt.members)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectPrimary_LargeDimensions(t *testing.T) {
	members := []photos.Asset{sized("big", 100000, 100000), sized("bigger", 100000, 100001)}
	got, ok := SelectPrimary(members)
	assert.True(t, ok)
	assert.Equal(t, "big", got)
}

func TestPlanPrimaries(t *testing.T) {
	stacks := []photos.Stack{
		stack("wrong", "a1", sized("a1", 4000, 3000), sized("a2", 800, 600)),
		stack("right", "b2", sized("b1", 4000, 3000), sized("b2", 800, 600)),
		stack("single", "c1", sized("c1", 10, 10)),
		stack("unknown", "d1", photos.Asset{ID: "d1"}, photos.Asset{ID: "d2"}),
	}

	actions := PlanPrimaries(stacks)
	require.Len(t, actions, 1)
	assert.Equal(t, reconcile.ActionUpdatePrimary, actions[0].Type)
	assert.Equal(t, "wrong", actions[0].StackID)
	assert.Equal(t, []string{"a2"}, actions[0].AssetIDs)
	assert.Contains(t, actions[0].Reason, "800x600")
}
