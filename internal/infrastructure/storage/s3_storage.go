// Package storage holds the object stores that keep uploaded onboarding
// documents: an S3-compatible bucket in deployed environments and a local
// directory for development.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	defaultRegion        = "us-east-1"
	defaultPresignExpiry = 15 * time.Minute
	defaultContentType   = "application/octet-stream"
)

var (
	errEmptyKey = errors.New("storage key is required")

	_ onboardingapp.ObjectStorage = (*S3ObjectStorage)(nil)
)

// S3ObjectStorage keeps documents in one bucket of AWS S3 or an S3-compatible
// store such as MinIO or Supabase storage. Downloads go through presigned
// GET URLs; the bucket itself stays private.
type S3ObjectStorage struct {
	client        *s3.Client
	presign       *s3.PresignClient
	bucket        string
	presignExpiry time.Duration
	logger        *zap.Logger
}

// NewS3ObjectStorage builds the client from cfg. Without an endpoint the AWS
// default endpoint resolution applies. It does not contact the store; call
// EnsureBucket for that.
func NewS3ObjectStorage(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*S3ObjectStorage, error) {
	if err := validateS3Config(cfg); err != nil {
		return nil, err
	}
	endpoint, err := normalizeEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = defaultPresignExpiry
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &S3ObjectStorage{
		client:        client,
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		presignExpiry: expiry,
		logger:        logger.Named("s3"),
	}, nil
}

func validateS3Config(cfg *config.StorageConfig) error {
	if cfg == nil {
		return errors.New("storage configuration is required")
	}
	var errs []error
	if cfg.Bucket == "" {
		errs = append(errs, errors.New("storage bucket is required"))
	}
	if cfg.AccessKeyID == "" {
		errs = append(errs, errors.New("storage access key is required"))
	}
	if cfg.SecretAccessKey == "" {
		errs = append(errs, errors.New("storage secret key is required"))
	}
	return errors.Join(errs...)
}

// normalizeEndpoint prefixes a bare host:port with the scheme UseSSL implies.
func normalizeEndpoint(endpoint string, useSSL bool) (string, error) {
	if endpoint == "" {
		return "", nil
	}
	if !strings.Contains(endpoint, "://") {
		scheme := "http://"
		if useSSL {
			scheme = "https://"
		}
		endpoint = scheme + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid storage endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid storage endpoint scheme %q", u.Scheme)
	}
	return endpoint, nil
}

// Bucket returns the configured bucket name.
func (s *S3ObjectStorage) Bucket() string { return s.bucket }

// EnsureBucket creates the bucket when it does not exist yet. Losing a
// creation race to another instance is not an error.
func (s *S3ObjectStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	var owned *types.BucketAlreadyOwnedByYou
	if err != nil && !errors.As(err, &owned) {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Storage bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Upload writes data under key. Documents are never cached by clients or
// intermediaries.
func (s *S3ObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return errEmptyKey
	}
	if contentType == "" {
		contentType = defaultContentType
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("private, no-store"),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	s.logger.Debug("Object uploaded", zap.String("key", key), zap.Int("size", len(data)))
	return nil
}

// GenerateDownloadURL presigns a GET for key. A non-positive expiresIn uses
// the configured expiry.
func (s *S3ObjectStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errEmptyKey
	}
	if expiresIn <= 0 {
		expiresIn = s.presignExpiry
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, time.Now().Add(expiresIn), nil
}

// DeleteObject removes key. Deleting a missing key succeeds.
func (s *S3ObjectStorage) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return errEmptyKey
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// ObjectExists reports whether key is present.
func (s *S3ObjectStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errEmptyKey
	}
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, fmt.Errorf("head object %s: %w", key, err)
	}
}

// isNotFound reports whether err is a missing-object error. Some
// S3-compatible stores only report it in the error text.
func isNotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "NotFound") || strings.Contains(msg, "NoSuchKey")
}
