package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client and the bucket that stores food images.
type S3Config struct {
	Client     *s3.Client
	BucketName string
	PresignTTL time.Duration
}

// NewS3Config initializes the S3 client for food images. It returns nil and no
// error when no bucket is configured, in which case image references are
// served as stored.
func NewS3Config(ctx context.Context, cfg StorageConfig) (*S3Config, error) {
	if cfg.BucketName == "" {
		return nil, nil
	}

	// Load AWS config from environment or shared config
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3ConfigFromAWS(awsCfg, cfg), nil
}

// NewS3ConfigFromAWS builds an S3Config from an already loaded AWS config.
func NewS3ConfigFromAWS(awsCfg aws.Config, cfg StorageConfig) *S3Config {
	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.BucketName,
		PresignTTL: ttl,
	}
}

// GeneratePresignedURL generates a presigned GET URL for the given object key
func (s *S3Config) GeneratePresignedURL(ctx context.Context, bucket, objectKey string, expiration time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.Client)
	presigned, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", bucket, objectKey, err)
	}
	return presigned.URL, nil
}

// ResolveImageURL turns a stored food image reference into a URL a client can
// fetch. http(s) URLs pass through. "s3://bucket/key" and bare keys are
// presigned; bare keys use the configured bucket.
func (s *S3Config) ResolveImageURL(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	if s == nil {
		return ref, nil
	}

	bucket, key := s.BucketName, strings.TrimPrefix(ref, "/")
	if rest, ok := strings.CutPrefix(ref, "s3://"); ok {
		b, k, found := strings.Cut(rest, "/")
		if !found || b == "" || k == "" {
			return "", fmt.Errorf("invalid image reference %q", ref)
		}
		bucket, key = b, k
	}
	return s.GeneratePresignedURL(ctx, bucket, key, s.PresignTTL)
}
