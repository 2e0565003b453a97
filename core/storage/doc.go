// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that reconcile plans can be exported to AWS
// S3 or a self-hosted MinIO instance. Export is optional and disabled unless
// STORAGE_ENABLED is set.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first export.
//   - PutObject: Uploads a plan document.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "stack-manager")
package storage
