// Package photos provides a client for the Photo Service (an Immich-compatible
// REST API) that owns the assets, stacks and albums of a collection.
//
// The Client interface abstracts the HTTP surface so that the stack and album
// features can be tested against the mock in core/photos/mocks.
//
// # Operations
//
//   - ListStacks, ListAlbums, GetAlbumAssets: snapshot reads.
//   - SearchAllAssets: pages POST /api/search/metadata until a short page.
//   - CreateStack, UpdateStackPrimary, DeleteStack: stack mutations.
//   - RemoveAssetsFromAlbum, UpdateAlbumOrder: album mutations.
//
// Every request carries the x-api-key header. Any non-2xx response is
// returned as an *APIError; there is no retry.
//
// # Usage
//
//	client, err := photos.NewClient(cfg.Immich)
//	stacks, err := client.ListStacks(ctx)
package photos
