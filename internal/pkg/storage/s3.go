package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"

	"github.com/newsroom/newsdesk/internal/pkg/env"
)

// S3Config holds object storage configuration
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
}

// LoadS3Config loads object storage configuration from environment variables
func LoadS3Config() (*S3Config, error) {
	cfg := &S3Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
	}

	if cfg.AccessKeyID == "" {
		return nil, errors.New("S3_ACCESS_KEY_ID is required when the s3 storage driver is used")
	}
	if cfg.SecretAccessKey == "" {
		return nil, errors.New("S3_SECRET_ACCESS_KEY is required when the s3 storage driver is used")
	}
	if cfg.BucketName == "" {
		return nil, errors.New("S3_BUCKET_NAME is required when the s3 storage driver is used")
	}

	return cfg, nil
}

// S3Backend stores files in an S3 (or S3-compatible) bucket.
type S3Backend struct {
	client *s3.Client
	config *S3Config
}

// NewS3Backend creates a new object storage backend
func NewS3Backend(cfg *S3Config) (*S3Backend, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// S3-compatible services want path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	log.Infof("[Storage] Initialized S3 backend for bucket: %s", cfg.BucketName)
	return &S3Backend{client: client, config: cfg}, nil
}

// Save uploads data to the bucket under relativePath as the object key.
func (b *S3Backend) Save(ctx context.Context, relativePath string, data io.Reader) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.config.BucketName),
		Key:    aws.String(relativePath),
		Body:   data,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", relativePath, err)
	}
	return nil
}

// Delete removes the object stored under relativePath.
func (b *S3Backend) Delete(ctx context.Context, relativePath string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.config.BucketName),
		Key:    aws.String(relativePath),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", relativePath, err)
	}
	return nil
}
