package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Service stores uploads in an S3 (or compatible) bucket and records the
// object URL on the owning record. Objects are written world-readable since
// the recorded path is used directly as an <img> source.
type S3Service struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	keyPrefix string
	baseURL   string
}

// NewS3Service builds an S3-backed sink. baseURL overrides the default
// virtual-hosted URL form, for path-style compatible endpoints.
func NewS3Service(client *s3.Client, bucket, keyPrefix, region, baseURL string) *S3Service {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Service{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *S3Service) Store(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("storage bucket is required")
	}

	key := uuid.NewString() + filepath.Ext(originalName)
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

var _ Service = (*S3Service)(nil)
