package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gongmyung/app-showcase/internal/logger"
)

// uploadURLPrefix is the public URL prefix every stored blob resolves under.
const uploadURLPrefix = "/uploads/"

// diskFileStore is the local-filesystem implementation of [FileStore].
// Generated names carry a timestamp plus a random suffix, so concurrent
// uploads of identically named files never collide.
type diskFileStore struct {
	uploadDir string
	maxBytes  int64
	logger    *logger.Logger
}

// NewDiskFileStore constructs a [FileStore] rooted at uploadDir with the
// given per-blob size ceiling.
func NewDiskFileStore(uploadDir string, maxBytes int64, log *logger.Logger) FileStore {
	return &diskFileStore{
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
		logger:    log,
	}
}

func (s *diskFileStore) Store(_ context.Context, blob Blob, prefix string) (string, error) {
	if err := s.validate(blob); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d_%s%s", prefix, time.Now().UnixMilli(), randomSuffix(), path.Ext(blob.Filename))
	return s.write(blob, "", name)
}

func (s *diskFileStore) StoreInCategory(_ context.Context, blob Blob, category string) (string, error) {
	if err := s.validate(blob); err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(path.Ext(blob.Filename), ".")
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), randomSuffix(), ext)
	return s.write(blob, category, name)
}

func (s *diskFileStore) Remove(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, uploadURLPrefix)
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("%w: %s", ErrInvalidFileURL, url)
	}

	target := filepath.Join(s.uploadDir, filepath.FromSlash(rel))
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			// idempotent delete: already gone is success
			s.logger.Debug().Str("url", url).Msg("file already absent")
			return nil
		}
		return fmt.Errorf("remove %s: %w", url, err)
	}

	return nil
}

// validate runs the full gate before any write: blob presence, media type
// allow-list, size ceiling.
func (s *diskFileStore) validate(blob Blob) error {
	if len(blob.Data) == 0 {
		return ErrBlobRequired
	}
	if !strings.HasPrefix(blob.ContentType, "image/") {
		return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, blob.ContentType)
	}
	if int64(len(blob.Data)) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes over %d limit", ErrBlobTooLarge, len(blob.Data), s.maxBytes)
	}
	return nil
}

func (s *diskFileStore) write(blob Blob, category, name string) (string, error) {
	dir := s.uploadDir
	if category != "" {
		dir = filepath.Join(dir, category)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, blob.Data, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}

	url := uploadURLPrefix + name
	if category != "" {
		url = uploadURLPrefix + category + "/" + name
	}

	s.logger.Debug().Str("url", url).Int("size", len(blob.Data)).Msg("blob stored")
	return url, nil
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
