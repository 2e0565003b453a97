package albums

import (
	"errors"
	"fmt"
	"strings"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"
)

// DefaultOrder is applied when no order is requested.
const DefaultOrder = photos.OrderAsc

// ErrInvalidOrder is returned for orders other than asc and desc.
var ErrInvalidOrder = errors.New("invalid album order")

// ParseOrder normalises a requested order. Empty means DefaultOrder.
func ParseOrder(order string) (string, error) {
	order = strings.ToLower(strings.TrimSpace(order))
	switch order {
	case "":
		return DefaultOrder, nil
	case photos.OrderAsc, photos.OrderDesc:
		return order, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidOrder, order, photos.OrderAsc, photos.OrderDesc)
	}
}

// PlanOrder returns an order_album action for every album not already shown
// in order. order must be a value returned by ParseOrder.
func PlanOrder(albums []photos.AlbumSummary, order string) []reconcile.Action {
	var actions []reconcile.Action
	for _, album := range albums {
		if album.Order == order {
			continue
		}
		current := album.Order
		if current == "" {
			current = "unset"
		}
		actions = append(actions, reconcile.Action{
			Type:    reconcile.ActionOrderAlbum,
			AlbumID: album.ID,
			Order:   order,
			Reason:  fmt.Sprintf("album %q (%d assets) is %s", album.AlbumName, album.AssetCount, current),
		})
	}
	return actions
}
