package mocks

import (
	"context"

	"stack-manager/core/photos"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of photos.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListStacks(ctx context.Context) ([]photos.Stack, error) {
	args := m.Called(ctx)
	if stacks, ok := args.Get(0).([]photos.Stack); ok {
		return stacks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListAlbums(ctx context.Context) ([]photos.AlbumSummary, error) {
	args := m.Called(ctx)
	if albums, ok := args.Get(0).([]photos.AlbumSummary); ok {
		return albums, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetAlbumAssets(ctx context.Context, albumID string) ([]photos.Asset, error) {
	args := m.Called(ctx, albumID)
	if assets, ok := args.Get(0).([]photos.Asset); ok {
		return assets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) SearchAllAssets(ctx context.Context) ([]photos.Asset, error) {
	args := m.Called(ctx)
	if assets, ok := args.Get(0).([]photos.Asset); ok {
		return assets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateStack(ctx context.Context, assetIDs []string) (*photos.Stack, error) {
	args := m.Called(ctx, assetIDs)
	if stack, ok := args.Get(0).(*photos.Stack); ok {
		return stack, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateStackPrimary(ctx context.Context, stackID, assetID string) (*photos.Stack, error) {
	args := m.Called(ctx, stackID, assetID)
	if stack, ok := args.Get(0).(*photos.Stack); ok {
		return stack, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DeleteStack(ctx context.Context, stackID string) error {
	args := m.Called(ctx, stackID)
	return args.Error(0)
}

func (m *Client) RemoveAssetsFromAlbum(ctx context.Context, albumID string, assetIDs []string) error {
	args := m.Called(ctx, albumID, assetIDs)
	return args.Error(0)
}

func (m *Client) UpdateAlbumOrder(ctx context.Context, albumID, order string) error {
	args := m.Called(ctx, albumID, order)
	return args.Error(0)
}
