package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"digiraksha/internal/config"
)

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

// MinIOClient talks to an S3 endpoint served at the host root.
type MinIOClient struct {
	client    *minio.Client
	region    string
	publicURL string
}

func NewMinioStorage(cfg config.Storage, publicURL string) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOClient{client: client, region: cfg.Region, publicURL: publicURL}, nil
}

func (m *MinIOClient) Upload(ctx context.Context, obj Object, bucket, folder string) (string, error) {
	objectName := ObjectName(folder, obj.FileName)

	size := obj.Size
	if size <= 0 {
		size = -1
	}

	_, err := m.client.PutObject(ctx, bucket, objectName, obj.Body, size, minio.PutObjectOptions{
		ContentType:  contentTypeOf(obj),
		CacheControl: cacheControl,
		UserMetadata: map[string]string{
			"original-filename": obj.FileName,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", bucket, objectName, err)
	}

	return m.FileURL(bucket, objectName), nil
}

func (m *MinIOClient) DeleteFile(ctx context.Context, bucket, objectPath string) error {
	err := m.client.RemoveObject(ctx, bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, objectPath, err)
	}
	return nil
}

// EnsureBucketsExist creates missing buckets and makes them publicly readable.
func (m *MinIOClient) EnsureBucketsExist(ctx context.Context) error {
	for _, bucket := range Buckets {
		exists, err := m.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}

		err = m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.region})
		if err != nil {
			// another instance may have created it in the meantime
			if code := minio.ToErrorResponse(err).Code; code != "BucketAlreadyOwnedByYou" && code != "BucketAlreadyExists" {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}

		if err := m.client.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket)); err != nil {
			return fmt.Errorf("failed to set policy on bucket %s: %w", bucket, err)
		}
	}
	return nil
}

func (m *MinIOClient) FileURL(bucket, objectPath string) string {
	return publicURL(m.publicURL, bucket, objectPath)
}
