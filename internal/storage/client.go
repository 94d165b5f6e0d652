// Where: internal/storage/client.go
// What: R2 client factory.
// Why: Encapsulate SDK configuration for the account-scoped R2 endpoint.
package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/trendradar/radarctl/internal/credentials"
)

// NewClient builds a BucketAPI talking to the R2 endpoint derived from record.
// R2 speaks the S3 wire protocol, so the standard SDK works once the base
// endpoint points at the account host.
func NewClient(ctx context.Context, record credentials.Record) (BucketAPI, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(record.Region()),
		config.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(record.AccessKeyID, record.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		options.BaseEndpoint = aws.String(record.EndpointURL())
	})
	return r2Client{client: client}, nil
}

type r2Client struct {
	client *s3.Client
}

func (c r2Client) HeadBucket(ctx context.Context, name string) error {
	if c.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)})
	return err
}
