package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// localStorage keeps objects as files directly under root.
// Writes go to a hidden temp file that is renamed into place only after a complete copy.
type localStorage struct {
	root string
	log  logrus.FieldLogger
}

// NewLocal creates the root directory if needed and returns a filesystem-backed Storage.
func NewLocal(root string, log logrus.FieldLogger) (Storage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	log.WithField("storage_root", abs).Info("using local file storage")
	return &localStorage{root: abs, log: log}, nil
}

func (l *localStorage) path(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(l.root, key), nil
}

func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	dst, err := l.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if _, err := os.Lstat(dst); err == nil {
		return ObjectInfo{}, fmt.Errorf("object %q already exists", key)
	}

	tmp, err := os.CreateTemp(l.root, "."+key+".*.part")
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				l.log.WithError(rmErr).WithField("file_path", tmpName).Warn("failed to remove partial upload")
			}
		}
	}()

	n, err := io.Copy(tmp, WithContext(ctx, r))
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write %s: %w", key, err)
	}
	if opt.Size >= 0 && n != opt.Size {
		return ObjectInfo{}, fmt.Errorf("write %s: got %d bytes, expected %d", key, n, opt.Size)
	}
	if err := tmp.Sync(); err != nil {
		return ObjectInfo{}, fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return ObjectInfo{}, fmt.Errorf("close %s: %w", key, err)
	}
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return ObjectInfo{}, fmt.Errorf("commit %s: %w", key, err)
	}
	committed = true

	st, err := os.Stat(dst)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat %s: %w", key, err)
	}
	return ObjectInfo{
		Key:          key,
		Location:     dst,
		Size:         st.Size(),
		ContentType:  opt.ContentType,
		LastModified: st.ModTime(),
		Metadata:     opt.Metadata,
	}, nil
}

func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	if !st.Mode().IsRegular() {
		f.Close()
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	return f, l.info(key, p, st), nil
}

func (l *localStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return ObjectInfo{}, ErrObjectNotFound
	}
	st, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ObjectInfo{}, ErrObjectNotFound
		}
		return ObjectInfo{}, err
	}
	if !st.Mode().IsRegular() {
		return ObjectInfo{}, ErrObjectNotFound
	}
	return l.info(key, p, st), nil
}

func (l *localStorage) Delete(ctx context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return ErrObjectNotFound
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return err
	}
	return nil
}

func (l *localStorage) info(key, p string, st fs.FileInfo) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Location:     p,
		Size:         st.Size(),
		LastModified: st.ModTime(),
	}
}
