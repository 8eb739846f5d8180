package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// Package storage holds the backing file storage for uploaded documents.
// Objects are addressed by a flat key (the generated file name).

var (
	// ErrObjectNotFound is returned when a key has no stored object.
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that are not a single plain path element.
	ErrInvalidKey = errors.New("invalid object key")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
// Location is the backend-specific full path (file path or bucket URL).
type ObjectInfo struct {
	Key          string
	Location     string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the backing file store. Put must not leave a partial object behind
// when it fails or ctx is cancelled.
type Storage interface {
	// Put writes the reader's content under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the object for streaming. Returns ErrObjectNotFound if absent.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns object info without opening it. Returns ErrObjectNotFound if absent.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object. Returns ErrObjectNotFound if absent, where the backend can tell.
	Delete(ctx context.Context, key string) error
}

// ValidateKey rejects keys that could escape the storage root or address hidden files.
func ValidateKey(key string) error {
	if key == "" || key != path.Base(key) || strings.ContainsAny(key, `/\`) ||
		strings.HasPrefix(key, ".") || strings.ContainsRune(key, 0) {
		return ErrInvalidKey
	}
	return nil
}

// contextReader fails reads once ctx is done, so long copies stop on cancellation.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// WithContext wraps r so that reads return ctx.Err() after cancellation.
func WithContext(ctx context.Context, r io.Reader) io.Reader {
	return contextReader{ctx: ctx, r: r}
}
