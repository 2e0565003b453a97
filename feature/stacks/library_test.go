package stacks

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"stack-manager/core/photos"
)

// library is an in-memory Photo Service. Creating a stack moves its assets
// out of the stacks they belonged to.
type library struct {
	mu      sync.Mutex
	assets  []photos.Asset
	stacks  []*photos.Stack
	albums  []*photos.Album
	nextID  int
	created int
}

func newLibrary(assets ...photos.Asset) *library {
	return &library{assets: assets}
}

func (l *library) asset(id string) photos.Asset {
	for _, a := range l.assets {
		if a.ID == id {
			return a
		}
	}
	return photos.Asset{ID: id}
}

func (l *library) addStack(id, primary string, members ...string) {
	s := &photos.Stack{ID: id, PrimaryAssetID: primary}
	for _, m := range members {
		s.Assets = append(s.Assets, l.asset(m))
	}
	l.stacks = append(l.stacks, s)
}

func (l *library) addAlbum(id, name string, members ...string) {
	a := &photos.Album{AlbumSummary: photos.AlbumSummary{ID: id, AlbumName: name, Order: photos.OrderDesc}}
	for _, m := range members {
		a.Assets = append(a.Assets, l.asset(m))
	}
	a.AssetCount = len(a.Assets)
	l.albums = append(l.albums, a)
}

func (l *library) stackOf(assetID string) *photos.Stack {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.stacks {
		for _, a := range s.Assets {
			if a.ID == assetID {
				return s
			}
		}
	}
	return nil
}

func (l *library) album(id string) *photos.Album {
	for _, a := range l.albums {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (l *library) ListStacks(ctx context.Context) ([]photos.Stack, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]photos.Stack, len(l.stacks))
	for i, s := range l.stacks {
		out[i] = *s
		out[i].Assets = slices.Clone(s.Assets)
	}
	return out, nil
}

func (l *library) ListAlbums(ctx context.Context) ([]photos.AlbumSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]photos.AlbumSummary, len(l.albums))
	for i, a := range l.albums {
		out[i] = a.AlbumSummary
	}
	return out, nil
}

func (l *library) GetAlbumAssets(ctx context.Context, albumID string) ([]photos.Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.album(albumID)
	if a == nil {
		return nil, fmt.Errorf("album %s not found", albumID)
	}
	return slices.Clone(a.Assets), nil
}

func (l *library) SearchAllAssets(ctx context.Context) ([]photos.Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.assets), nil
}

func (l *library) CreateStack(ctx context.Context, assetIDs []string) (*photos.Stack, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.stacks {
		s.Assets = slices.DeleteFunc(s.Assets, func(a photos.Asset) bool {
			return slices.Contains(assetIDs, a.ID)
		})
		if !slices.ContainsFunc(s.Assets, func(a photos.Asset) bool { return a.ID == s.PrimaryAssetID }) {
			s.PrimaryAssetID = ""
			if len(s.Assets) > 0 {
				s.PrimaryAssetID = s.Assets[0].ID
			}
		}
	}
	l.stacks = slices.DeleteFunc(l.stacks, func(s *photos.Stack) bool { return len(s.Assets) == 0 })

	l.nextID++
	l.created++
	s := &photos.Stack{ID: fmt.Sprintf("new%d", l.nextID), PrimaryAssetID: assetIDs[0]}
	for _, id := range assetIDs {
		s.Assets = append(s.Assets, l.asset(id))
	}
	l.stacks = append(l.stacks, s)
	return s, nil
}

func (l *library) UpdateStackPrimary(ctx context.Context, stackID, assetID string) (*photos.Stack, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.stacks {
		if s.ID == stackID {
			s.PrimaryAssetID = assetID
			return s, nil
		}
	}
	return nil, fmt.Errorf("stack %s not found", stackID)
}

func (l *library) DeleteStack(ctx context.Context, stackID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stacks = slices.DeleteFunc(l.stacks, func(s *photos.Stack) bool { return s.ID == stackID })
	return nil
}

func (l *library) RemoveAssetsFromAlbum(ctx context.Context, albumID string, assetIDs []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.album(albumID)
	if a == nil {
		return fmt.Errorf("album %s not found", albumID)
	}
	a.Assets = slices.DeleteFunc(a.Assets, func(asset photos.Asset) bool {
		return slices.Contains(assetIDs, asset.ID)
	})
	a.AssetCount = len(a.Assets)
	return nil
}

func (l *library) UpdateAlbumOrder(ctx context.Context, albumID, order string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.album(albumID)
	if a == nil {
		return fmt.Errorf("album %s not found", albumID)
	}
	a.Order = order
	return nil
}
