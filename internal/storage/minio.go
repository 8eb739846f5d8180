package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"doclib/internal/config"
)

// minioStorage implements the Storage interface using an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(ctx context.Context, cfg config.MinIOConfig, log logrus.FieldLogger) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.WithField("bucket", cfg.Bucket).Info("created storage bucket")
	}

	log.WithFields(logrus.Fields{"endpoint": cfg.Endpoint, "bucket": cfg.Bucket}).Info("using minio storage")
	return &minioStorage{client: cli, bucket: cfg.Bucket}, nil
}

func (m *minioStorage) location(key string) string {
	return "s3://" + m.bucket + "/" + key
}

// Put streams the object to the bucket. An aborted stream leaves no object behind.
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ValidateKey(key); err != nil {
		return ObjectInfo{}, err
	}
	info, err := m.client.PutObject(ctx, m.bucket, key, WithContext(ctx, r), opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Location:     m.location(key),
		Size:         info.Size,
		ContentType:  opt.ContentType,
		LastModified: time.Now(), // MinIO PutObjectInfo doesn't return LastModified
		Metadata:     opt.Metadata,
	}, nil
}

// Get downloads an object content as a ReadCloser along with basic info.
func (m *minioStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if ValidateKey(key) != nil {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, translateMinIOError(err)
	}
	// Stat forces the request so a missing key surfaces here rather than on first read.
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, translateMinIOError(err)
	}
	return obj, m.info(key, st), nil
}

func (m *minioStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	if ValidateKey(key) != nil {
		return ObjectInfo{}, ErrObjectNotFound
	}
	st, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, translateMinIOError(err)
	}
	return m.info(key, st), nil
}

// Delete removes an object by key. S3 deletes are idempotent, so a missing key is not reported.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	if ValidateKey(key) != nil {
		return ErrObjectNotFound
	}
	return translateMinIOError(m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}))
}

func (m *minioStorage) info(key string, st minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Location:     m.location(key),
		Size:         st.Size,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}
}

func translateMinIOError(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return ErrObjectNotFound
	}
	return err
}
