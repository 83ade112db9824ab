package storage

import (
	"context"
	"fmt"
	"log"
	"time"
	"valivio-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio connects to MinIO and makes sure the content bucket is reachable.
func NewMinio(driverConfig *config.DriverConfig, bucketName string) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
	}
	if !exists {
		log.Printf("Minio bucket %s does not exist yet, content will be served as missing", bucketName)
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
