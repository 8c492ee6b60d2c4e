// Package blobstore holds attached listing images in process memory and hands out
// display handles for them. Handles do not survive a restart.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"sdi-showcase/internal/pkg/config"
	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/usecase/shared"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// HandlePrefix is the route the blob handler is mounted on.
const HandlePrefix = "/api/blobs/"

var (
	ErrEmptyUpload   = errors.New("uploaded file is empty")
	ErrUploadTooBig  = errors.New("uploaded file exceeds size limit")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrInvalidHandle = errors.New("invalid blob handle")
)

type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

type MemoryStore struct {
	mu       sync.RWMutex
	blobs    map[uuid.UUID]Blob
	maxBytes int64
}

var _ shared.ImageStore = (*MemoryStore)(nil)

func NewMemoryStore(cfg config.UploadConfig) *MemoryStore {
	return &MemoryStore{
		blobs:    make(map[uuid.UUID]Blob),
		maxBytes: cfg.MaxImageBytes,
	}
}

func (s *MemoryStore) Check(upload shared.ImageUpload) error {
	_, err := s.sniff(upload)
	return err
}

// Put sniffs the bytes rather than trusting the client's content type.
func (s *MemoryStore) Put(_ context.Context, upload shared.ImageUpload) (string, error) {
	contentType, err := s.sniff(upload)
	if err != nil {
		return "", err
	}

	id := uuid.New()
	data := make([]byte, len(upload.Data))
	copy(data, upload.Data)

	s.mu.Lock()
	s.blobs[id] = Blob{Name: upload.Name, ContentType: contentType, Data: data}
	s.mu.Unlock()

	return HandlePrefix + id.String(), nil
}

// Get accepts either the bare id or the full handle.
func (s *MemoryStore) Get(handle string) (Blob, bool, error) {
	id, err := uuid.Parse(strings.TrimPrefix(handle, HandlePrefix))
	if err != nil {
		return Blob{}, false, errs.Validation(ErrInvalidHandle)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[id]
	return b, ok, nil
}

func (s *MemoryStore) sniff(upload shared.ImageUpload) (string, error) {
	if len(upload.Data) == 0 {
		return "", errs.Validation(ErrEmptyUpload)
	}
	if s.maxBytes > 0 && int64(len(upload.Data)) > s.maxBytes {
		return "", errs.Validation(fmt.Errorf("%w: %d > %d bytes", ErrUploadTooBig, len(upload.Data), s.maxBytes))
	}

	mt := mimetype.Detect(upload.Data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", errs.Validation(fmt.Errorf("%w: detected %s", ErrNotAnImage, mt.String()))
	}
	return mt.String(), nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
