package albums

import (
	"testing"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", photos.OrderAsc, false},
		{"asc", photos.OrderAsc, false},
		{" DESC ", photos.OrderDesc, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrder(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanOrder(t *testing.T) {
	albums := []photos.AlbumSummary{
		{ID: "al1", AlbumName: "Holiday", AssetCount: 12, Order: photos.OrderDesc},
		{ID: "al2", AlbumName: "Family", AssetCount: 3, Order: photos.OrderAsc},
		{ID: "al3", AlbumName: "Untouched"},
	}

	actions := PlanOrder(albums, photos.OrderAsc)
	require.Len(t, actions, 2)
	assert.Equal(t, reconcile.ActionOrderAlbum, actions[0].Type)
	assert.Equal(t, "al1", actions[0].AlbumID)
	assert.Equal(t, photos.OrderAsc, actions[0].Order)
	assert.Contains(t, actions[0].Reason, "desc")
	assert.Equal(t, "al3", actions[1].AlbumID)
	assert.Contains(t, actions[1].Reason, "unset")

	actions = PlanOrder(albums, photos.OrderDesc)
	require.Len(t, actions, 2)
	assert.Equal(t, "al2", actions[0].AlbumID)

	assert.Empty(t, PlanOrder(nil, photos.OrderAsc))
}
