// Package storage persists uploaded images on local disk and serves as the
// best-effort remover for replaced or orphaned files.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"inkpost/internal/observability"

	"github.com/google/uuid"
)

// allowedMimeTypes mirrors the upload filter: only JPEG and PNG pass.
var allowedMimeTypes = map[string]struct{}{
	"image/jpg":  {},
	"image/jpeg": {},
	"image/png":  {},
}

// IsAllowedImageType reports whether the uploaded content type is accepted.
func IsAllowedImageType(contentType string) bool {
	_, ok := allowedMimeTypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ok
}

// ImageStore writes uploaded images under a fixed directory. Filenames are
// random identifiers; the original extension is discarded.
type ImageStore struct {
	dir    string
	logger *observability.Logger
}

// NewImageStore creates the store, ensuring the directory exists.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &ImageStore{
		dir:    dir,
		logger: observability.Component("storage"),
	}, nil
}

// Dir returns the directory images are stored under.
func (s *ImageStore) Dir() string { return s.dir }

// Save writes the uploaded content to a new randomly named file and returns
// the storage path relative to the process root, e.g. "images/<uuid>".
func (s *ImageStore) Save(src io.Reader) (string, error) {
	name := uuid.New().String()
	full := filepath.Join(s.dir, name)

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(full)
		return "", fmt.Errorf("write image file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)), nil
}

// Remove deletes a stored image asynchronously. The outcome is not awaited
// and failures are logged, never surfaced: at-most-once, no retry.
func (s *ImageStore) Remove(path string) {
	go s.remove(context.Background(), path)
}

func (s *ImageStore) remove(ctx context.Context, path string) {
	full, err := s.resolve(path)
	if err != nil {
		observability.LogAsyncOperationError(ctx, "image_remove", err, map[string]interface{}{"path": path})
		return
	}
	if err := os.Remove(full); err != nil {
		observability.LogAsyncOperationError(ctx, "image_remove", err, map[string]interface{}{"path": path})
		return
	}
	observability.LogAsyncOperationEnd(ctx, "image_remove", map[string]interface{}{"path": path})
}

// resolve maps a stored path back to a file inside the image directory,
// rejecting anything that escapes it.
func (s *ImageStore) resolve(path string) (string, error) {
	name := filepath.Base(filepath.FromSlash(path))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid image path %q", path)
	}
	return filepath.Join(s.dir, name), nil
}
