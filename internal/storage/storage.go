// Package storage mirrors finished export files to object storage.
package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Mirror keeps a remote copy of export files.
type Mirror interface {
	Upload(ctx context.Context, path string) (string, error)
	Remove(ctx context.Context, path string) error
}

type NoopMirror struct{}

func (NoopMirror) Upload(context.Context, string) (string, error) { return "", nil }

func (NoopMirror) Remove(context.Context, string) error { return nil }

type objectClient interface {
	FPutObject(ctx context.Context, bucket, object, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

type MinioMirror struct {
	client objectClient
	bucket string
	prefix string
	log    *zap.Logger
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// NewMinioMirror connects and creates the bucket if it is missing.
func NewMinioMirror(ctx context.Context, cfg MinioConfig, log *zap.Logger) (*MinioMirror, error) {
	if log == nil {
		log = zap.NewNop()
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.Info("bucket created", zap.String("bucket", cfg.Bucket))
	}
	return &MinioMirror{client: client, bucket: cfg.Bucket, prefix: "exports/", log: log}, nil
}

func (m *MinioMirror) objectName(path string) string {
	return m.prefix + filepath.Base(path)
}

func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// Upload copies the file and returns its object name.
func (m *MinioMirror) Upload(ctx context.Context, path string) (string, error) {
	name := m.objectName(path)
	info, err := m.client.FPutObject(ctx, m.bucket, name, path, minio.PutObjectOptions{ContentType: contentType(path)})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	m.log.Info("export mirrored", zap.String("object", name), zap.Int64("size", info.Size))
	return name, nil
}

func (m *MinioMirror) Remove(ctx context.Context, path string) error {
	return m.client.RemoveObject(ctx, m.bucket, m.objectName(path), minio.RemoveObjectOptions{})
}
