package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"folio/internal/storage"
)

const resumeURLExpiry = 15 * time.Minute

// MediaObject describes an uploaded media file.
type MediaObject struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// MediaService manages images and documents referenced by content records.
type MediaService interface {
	// Upload stores r under a generated key in folder.
	Upload(ctx context.Context, folder string, r io.Reader, filename, contentType string, size int64) (*MediaObject, error)

	// Open streams the object at key. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)

	Delete(ctx context.Context, key string) error

	// ResumeURL returns a downloadable link for the configured resume.
	ResumeURL(ctx context.Context) (string, error)
}

type mediaService struct {
	store   storage.Storage
	content ContentService
	base    string
}

// NewMediaService constructs a new MediaService. content supplies the resume reference.
func NewMediaService(store storage.Storage, content ContentService, mediaBaseURL string) MediaService {
	return &mediaService{store: store, content: content, base: strings.TrimRight(mediaBaseURL, "/")}
}

func (s *mediaService) Upload(ctx context.Context, folder string, r io.Reader, filename, contentType string, size int64) (*MediaObject, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	key, err := storage.NewMediaKey(folder, filename)
	if err != nil {
		return nil, ErrInvalidKey
	}

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	return &MediaObject{
		Key:         info.Key,
		URL:         ResolveMediaURL(s.base, info.Key),
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *mediaService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	key, err := storage.CleanKey(key)
	if err != nil {
		return nil, storage.ObjectInfo{}, ErrInvalidKey
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("get %s: %w", key, err)
	}
	return rc, info, nil
}

func (s *mediaService) Delete(ctx context.Context, key string) error {
	key, err := storage.CleanKey(key)
	if err != nil {
		return ErrInvalidKey
	}
	if err := s.store.Delete(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}

// ResumeURL presigns resumes held in the media bucket; external URLs are returned as configured.
func (s *mediaService) ResumeURL(ctx context.Context) (string, error) {
	cfg, err := s.content.SiteConfig(ctx)
	if err != nil {
		return "", err
	}
	ref := cfg.ResumeURL
	if ref == "" {
		return "", ErrNotFound
	}
	ref, local := strings.CutPrefix(ref, s.base+"/")
	if !local && strings.Contains(ref, "://") {
		return ref, nil
	}

	key, err := storage.CleanKey(ref)
	if err != nil {
		return "", ErrInvalidKey
	}
	u, err := s.store.PresignGet(ctx, key, resumeURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign resume: %w", err)
	}
	return u, nil
}
