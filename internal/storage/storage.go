// Package storage holds media assets (project thumbnails, post images, profile image, resume)
// in an S3-compatible object store. Implementations stream; nothing touches local disk.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// ErrInvalidKey is returned for keys that are empty, absolute or escape their folder.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the media object store.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// MediaFolders are the top-level prefixes uploads may target.
var MediaFolders = map[string]bool{
	"projects": true,
	"blog":     true,
	"profile":  true,
	"resume":   true,
}

// NewMediaKey builds a collision-free key "<folder>/<uuid><ext>" from an uploaded filename.
func NewMediaKey(folder, filename string) (string, error) {
	if !MediaFolders[folder] {
		return "", ErrInvalidKey
	}
	return folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename)), nil
}

// CleanKey normalizes a key taken from a URL path and rejects traversal.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned != key || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", ErrInvalidKey
	}
	folder, _, ok := strings.Cut(cleaned, "/")
	if !ok || !MediaFolders[folder] {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
