package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"doclib/internal/config"
)

// gcsStorage stores objects in a Google Cloud Storage bucket.
type gcsStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCS creates a GCS-backed Storage. If cfg.CredentialsFile is empty, ADC is used.
func NewGCS(ctx context.Context, cfg config.GCSConfig, log logrus.FieldLogger) (Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	log.WithField("bucket", cfg.Bucket).Info("using gcs storage")
	return &gcsStorage{client: client, bucket: cfg.Bucket}, nil
}

func (g *gcsStorage) location(key string) string {
	return "gs://" + g.bucket + "/" + key
}

// Put streams into an object writer. Cancelling ctx before Close discards the upload.
func (g *gcsStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ValidateKey(key); err != nil {
		return ObjectInfo{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wc := g.client.Bucket(g.bucket).Object(key).If(gcs.Conditions{DoesNotExist: true}).NewWriter(ctx)
	wc.ContentType = opt.ContentType
	wc.Metadata = opt.Metadata
	if _, err := io.Copy(wc, WithContext(ctx, r)); err != nil {
		cancel()
		_ = wc.Close()
		return ObjectInfo{}, err
	}
	if err := wc.Close(); err != nil {
		return ObjectInfo{}, err
	}

	attrs := wc.Attrs()
	return ObjectInfo{
		Key:          key,
		Location:     g.location(key),
		Size:         attrs.Size,
		ContentType:  attrs.ContentType,
		LastModified: attrs.Updated,
		Metadata:     attrs.Metadata,
	}, nil
}

func (g *gcsStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if ValidateKey(key) != nil {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	rc, err := g.client.Bucket(g.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, ObjectInfo{}, translateGCSError(err)
	}
	return rc, ObjectInfo{
		Key:          key,
		Location:     g.location(key),
		Size:         rc.Attrs.Size,
		ContentType:  rc.Attrs.ContentType,
		LastModified: rc.Attrs.LastModified,
	}, nil
}

func (g *gcsStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	if ValidateKey(key) != nil {
		return ObjectInfo{}, ErrObjectNotFound
	}
	attrs, err := g.client.Bucket(g.bucket).Object(key).Attrs(ctx)
	if err != nil {
		return ObjectInfo{}, translateGCSError(err)
	}
	return ObjectInfo{
		Key:          key,
		Location:     g.location(key),
		Size:         attrs.Size,
		ContentType:  attrs.ContentType,
		LastModified: attrs.Updated,
		Metadata:     attrs.Metadata,
	}, nil
}

func (g *gcsStorage) Delete(ctx context.Context, key string) error {
	if ValidateKey(key) != nil {
		return ErrObjectNotFound
	}
	return translateGCSError(g.client.Bucket(g.bucket).Object(key).Delete(ctx))
}

func translateGCSError(err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrObjectNotFound
	}
	return err
}
