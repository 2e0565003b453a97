package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"stack-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Exporter writes plans as JSON objects to object storage.
type Exporter struct {
	client storage.Client
	bucket string
	prefix string
}

// NewExporter creates an exporter writing under prefix in bucket.
func NewExporter(client storage.Client, bucket, prefix string) *Exporter {
	return &Exporter{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the key a plan is stored under.
func (e *Exporter) ObjectName(plan *Plan) string {
	day := plan.CreatedAt.Format("2006/01/02")
	return path.Join(e.prefix, day, plan.Step+"-"+plan.RunID+".json")
}

// Export uploads the plan and returns its object name.
// The bucket is created if it does not exist yet.
func (e *Exporter) Export(ctx context.Context, plan *Plan) (string, error) {
	exists, err := e.client.BucketExists(ctx, e.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", e.bucket, err)
	}
	if !exists {
		if err := e.client.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", e.bucket, err)
		}
	}

	payload, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	name := e.ObjectName(plan)
	_, err = e.client.PutObject(ctx, e.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload plan %s: %w", name, err)
	}
	return name, nil
}
