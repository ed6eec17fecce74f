package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"drezzle/internal/config"
)

// Storage хранит документы, приложенные к заявке на проверку эксперта.
// Сами медиа-файлы (аудио/видео) сюда не попадают, они передаются как
// закодированные строки внутри записи контента.
type Storage interface {
	UploadVerificationDocuments(ctx context.Context, userID string, documents string) (string, string, error)
	DeleteDocuments(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании клиента MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка при создании бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// UploadVerificationDocuments кладет закодированные документы в бакет и
// возвращает имя объекта и URL, который сохраняется на пользователе.
func (m *MinIOClient) UploadVerificationDocuments(ctx context.Context, userID string, documents string) (string, string, error) {
	now := time.Now().UTC()
	objectName := fmt.Sprintf("verifications/%s/%d/%02d/%s",
		userID,
		now.Year(),
		now.Month(),
		uuid.New().String())

	reader := strings.NewReader(documents)

	_, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName, reader, int64(reader.Len()),
		minio.PutObjectOptions{
			ContentType: "application/octet-stream",
			UserMetadata: map[string]string{
				"user-id":     userID,
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки документов в MinIO: %w", err)
	}

	scheme := "http"
	if m.config.MinIO.UseSSL {
		scheme = "https"
	}
	documentsURL := fmt.Sprintf("%s://%s/%s/%s", scheme, m.config.MinIO.Endpoint, m.config.MinIO.BucketName, objectName)

	return objectName, documentsURL, nil
}

func (m *MinIOClient) DeleteDocuments(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления документов из MinIO: %w", err)
	}
	return nil
}
