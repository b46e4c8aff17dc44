package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"motionstock/internal/domain/service"
	"motionstock/pkg/logger"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	storageClient := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		logger.Warn("Failed to set CORS configuration: %v", err)
	}

	return storageClient, nil
}

func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	corsConfig := storage.CORS{
		MaxAge:          3600,
		Methods:         []string{"GET", "HEAD"},
		Origins:         []string{"*"},
		ResponseHeaders: []string{"Content-Type", "Content-Disposition"},
	}

	bucketAttrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %v", err)
	}

	if len(bucketAttrs.CORS) == 0 {
		_, err := bucket.Update(ctx, storage.BucketAttrsToUpdate{
			CORS: []storage.CORS{corsConfig},
		})
		if err != nil {
			return fmt.Errorf("failed to update bucket CORS: %v", err)
		}
	}

	return nil
}

func (c *CloudStorageClient) Save(ctx context.Context, key string, r io.Reader, contentType string) (int64, error) {
	obj := c.client.Bucket(c.bucketName).Object(key)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "private, max-age=0"

	size, err := io.Copy(wc, r)
	if err != nil {
		wc.Close()
		return 0, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return 0, fmt.Errorf("failed to close writer: %v", err)
	}

	return size, nil
}

func (c *CloudStorageClient) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	reader, err := c.client.Bucket(c.bucketName).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, 0, service.ErrObjectNotFound
		}
		return nil, 0, fmt.Errorf("failed to open object: %v", err)
	}
	return reader, reader.Attrs.Size, nil
}

func (c *CloudStorageClient) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.client.Bucket(c.bucketName).Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %v", err)
	}
	return true, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, key string) error {
	if err := c.client.Bucket(c.bucketName).Object(key).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return service.ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
