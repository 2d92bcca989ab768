// Package storage stores uploaded image bytes in a MinIO bucket and
// hands back public retrieval URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopquanao/storefront/config"
)

// ObjectStore is the interface exercised by the upload handlers.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ErrStoreUnavailable is returned when the object store never came up.
var ErrStoreUnavailable = errors.New("object storage unavailable")

// MinioStore implements ObjectStore against a MinIO endpoint.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore builds the client and makes sure the bucket exists.
func NewMinioStore(cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio client")
	}

	s := &MinioStore{client: client, bucket: cfg.Bucket, publicURL: cfg.PublicURL}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "minio bucket check")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "minio make bucket")
		}
		zap.L().Info("created object storage bucket", zap.String("bucket", cfg.Bucket))
	}
	return s, nil
}

// Put stores data under key and returns the public retrieval URL. A
// store whose startup init failed is wired into the handlers as a nil
// handle, so that state surfaces as a regular error here.
func (s *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrStoreUnavailable
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "minio put object")
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// ObjectKey builds the storage key for an uploaded file: a millisecond
// timestamp prefix keeps names unique while preserving the original
// filename for humans.
func ObjectKey(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
}
