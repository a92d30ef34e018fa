// Package storage mirrors successfully published files into an object
// bucket. The filesystem areas stay the source of truth; the archive
// is a best-effort copy and every failure is only logged.
package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"redditstage/internal/config"
)

type Archiver interface {
	ArchivePublished(ctx context.Context, mediaType, filename, filePath string) error
}

type MinIOClient struct {
	client *minio.Client
	config config.MinIO
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	return &MinIOClient{client: client, config: cfg.MinIO}, nil
}

func (m *MinIOClient) ArchivePublished(ctx context.Context, mediaType, filename, filePath string) error {
	fileExt := strings.ToLower(filepath.Ext(filename))

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%s", mediaType, filename)

	_, err := m.client.FPutObject(ctx, m.config.BucketName, objectName, filePath,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"archive-id":  uuid.New().String(),
				"archived-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return fmt.Errorf("failed to archive %s to MinIO: %w", filename, err)
	}

	return nil
}

var _ Archiver = (*MinIOClient)(nil)
