// Package storage wraps the S3-compatible object store holding task
// materials, extracted keyframes, and produced thumbnails.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/textloom/textloom/pkg/config"
)

// Store is the object-storage client used by the pipeline.
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// New connects to the object store and ensures the bucket exists.
func New(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*Store, error) {
	accessKey := os.Getenv(cfg.AccessKeyEnv)
	secretKey := os.Getenv(cfg.SecretKeyEnv)
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("storage credentials %s/%s are not set", cfg.AccessKeyEnv, cfg.SecretKeyEnv)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	exists, err := client.BucketExists(setupCtx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(setupCtx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("Created storage bucket", "bucket", cfg.Bucket)
	}

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// MaterialKey builds the object key for one downloaded task material.
func MaterialKey(taskID, filename string) string {
	return path.Join("textloom", taskID, "materials", filename)
}

// KeyframeKey builds the object key for one extracted video keyframe.
func KeyframeKey(taskID, mediaItemID string, frame int) string {
	return path.Join("textloom", taskID, "keyframes", fmt.Sprintf("%s_%d.jpg", mediaItemID, frame))
}

// UploadKey builds a date-partitioned key for ad-hoc uploads.
func UploadKey(filename string) string {
	now := time.Now().UTC()
	return path.Join("uploads",
		fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day()),
		fmt.Sprintf("%s_%s", uuid.New().String(), filename))
}

// UploadFile stores a local file under the given key and returns its public URL.
func (s *Store) UploadFile(ctx context.Context, key, localPath, contentType string) (string, error) {
	opts := minio.PutObjectOptions{}
	if contentType != "" {
		opts.ContentType = contentType
	}

	info, err := s.client.FPutObject(ctx, s.bucket, key, localPath, opts)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Debug("Uploaded object", "key", key, "bytes", info.Size)
	return s.PublicURL(key), nil
}

// DownloadFile fetches an object to a local path.
func (s *Store) DownloadFile(ctx context.Context, key, localPath string) error {
	if err := s.client.FGetObject(ctx, s.bucket, key, localPath, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("failed to download %s: %w", key, err)
	}
	return nil
}

// DeleteFile removes an object.
func (s *Store) DeleteFile(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// FileExists reports whether an object is present.
func (s *Store) FileExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	return true, nil
}

// ListTaskFiles lists the object keys stored under one task.
func (s *Store) ListTaskFiles(ctx context.Context, taskID string) ([]string, error) {
	prefix := path.Join("textloom", taskID) + "/"

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// PublicURL returns the externally reachable URL for an object key.
func (s *Store) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// InNamespace reports whether a URL already points into this store. Such
// URLs are trusted as-is during material processing and not re-downloaded.
func (s *Store) InNamespace(url string) bool {
	return s.publicBaseURL != "" && strings.HasPrefix(url, s.publicBaseURL+"/")
}
