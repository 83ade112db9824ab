package storage

import (
	"context"
	"io"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.ContentStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) ReadObject(ctx context.Context, objectName string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, m.classify(err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, m.classify(err)
	}
	return data, nil
}

func (m *minioStorage) classify(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return contracts.ErrObjectNotFound
	}
	return exceptions.ErrMinioGetObject(err, m.BucketName)
}
