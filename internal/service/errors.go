package service

import "errors"

var (
	ErrSlugRequired   = errors.New("slug is required")
	ErrNotFound       = errors.New("not found")
	ErrInvalidContact = errors.New("invalid contact submission")
	ErrReaderNil      = errors.New("reader is nil")
	ErrInvalidKey     = errors.New("invalid media key")
)
