package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolioapi/internal/config"
)

// Asset is one stored object: a stable public URL plus the opaque
// identifier used to delete it later.
type Asset struct {
	URL     string
	AssetID string
}

type Storage interface {
	Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (*Asset, error)
	Remove(ctx context.Context, assetID string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing minio client: %w", err)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

func (m *MinIOClient) Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (*Asset, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".bin"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return nil, fmt.Errorf("uploading to minio: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s",
		strings.TrimSuffix(m.cfg.MinIO.PublicBaseURL, "/"),
		m.cfg.MinIO.BucketName,
		objectName)

	return &Asset{URL: url, AssetID: objectName}, nil
}

func (m *MinIOClient) Remove(ctx context.Context, assetID string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, assetID,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("removing from minio: %w", err)
	}
	return nil
}
