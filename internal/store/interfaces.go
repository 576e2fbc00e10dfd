package store

import (
	"context"

	"github.com/gongmyung/app-showcase/models"
)

// AppRepository is whole-collection storage for portfolio app records.
// Implementations assign the record id at create time.
type AppRepository interface {
	List(ctx context.Context) ([]models.AppRecord, error)
	Get(ctx context.Context, id string) (models.AppRecord, error)
	Create(ctx context.Context, record models.AppRecord) (models.AppRecord, error)
	Update(ctx context.Context, id string, update models.AppUpdate) (models.AppRecord, error)
	Delete(ctx context.Context, id string) error
}

// ContentRepository is whole-collection storage for content items.
type ContentRepository interface {
	List(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)
	Create(ctx context.Context, item models.ContentItem) (models.ContentItem, error)
	Update(ctx context.Context, update models.ContentUpdate) (models.ContentItem, error)
	Delete(ctx context.Context, id string) error
}

// Blob is one uploaded binary with the metadata the validation gate needs.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FileStore persists uploaded blobs and resolves their public URLs back to
// disk for removal.
//
// Store writes `/uploads/<prefix>_<unixMilli>_<rand>.<ext>` names (the
// generic asset path); StoreInCategory writes
// `/uploads/<category>/<unixMilli>-<rand>.<ext>` names (the content image
// path). Both validate media type and size before any write.
type FileStore interface {
	Store(ctx context.Context, blob Blob, prefix string) (string, error)
	StoreInCategory(ctx context.Context, blob Blob, category string) (string, error)
	// Remove deletes the file behind a previously produced URL. A file
	// that is already gone counts as success; URLs outside the upload
	// prefix are rejected with ErrInvalidFileURL before touching disk.
	Remove(ctx context.Context, url string) error
}
