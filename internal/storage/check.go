// Where: internal/storage/check.go
// What: Bucket reachability probe.
// Why: Confirm resolved credentials actually open the bucket before a run.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultCheckTimeout bounds the probe when the caller doesn't set one.
const DefaultCheckTimeout = 10 * time.Second

// BucketAPI is the narrow slice of S3 surface the probe needs.
type BucketAPI interface {
	HeadBucket(ctx context.Context, name string) error
}

// CheckBucket verifies the bucket answers a HeadBucket call within timeout.
func CheckBucket(ctx context.Context, api BucketAPI, bucket string, timeout time.Duration) error {
	if api == nil {
		return fmt.Errorf("bucket api is nil")
	}
	name := strings.TrimSpace(bucket)
	if name == "" {
		return fmt.Errorf("bucket name is required")
	}
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := api.HeadBucket(ctx, name); err != nil {
		return fmt.Errorf("bucket %q unreachable: %w", name, err)
	}
	return nil
}
