// Package storage hands out time-limited links to resource files kept in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultExpiry = 15 * time.Minute

type FileLinker interface {
	DownloadURL(ctx context.Context, objectKey, filename string) (string, error)
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	Expiry    time.Duration
}

type MinioStorage struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	log    log.Log
}

// NewMinioStorage returns nil, nil when no endpoint is configured.
func NewMinioStorage(cfg Config, logger log.Log) (*MinioStorage, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	return &MinioStorage{client: client, bucket: cfg.Bucket, expiry: expiry, log: logger}, nil
}

func (s *MinioStorage) DownloadURL(ctx context.Context, objectKey, filename string) (string, error) {
	params := url.Values{}
	if filename != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, s.expiry, params)
	if err != nil {
		s.log.Error("gateway/storage", err.Error(), "DownloadURL", objectKey)
		return "", err
	}
	return u.String(), nil
}
