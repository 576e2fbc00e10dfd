package store

import (
	"context"
	"path/filepath"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

// contentDocumentRepository is the JSON-document implementation of
// [ContentRepository], backed by contents.json under the data directory.
type contentDocumentRepository struct {
	doc    *jsonDocument
	logger *logger.Logger
}

// NewContentDocumentRepository constructs a [ContentRepository] over
// <dataDir>/contents.json.
func NewContentDocumentRepository(dataDir string, log *logger.Logger) ContentRepository {
	return &contentDocumentRepository{
		doc:    newJSONDocument(filepath.Join(dataDir, "contents.json"), log),
		logger: log,
	}
}

func (r *contentDocumentRepository) List(_ context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	items := make([]models.ContentItem, 0)
	r.doc.load(&items)

	filtered := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.PublishedOnly && !item.IsPublished {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered, nil
}

func (r *contentDocumentRepository) Create(_ context.Context, item models.ContentItem) (models.ContentItem, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	items := make([]models.ContentItem, 0)
	r.doc.load(&items)

	item.ID = uniqueID(func(id string) bool {
		for _, it := range items {
			if it.ID == id {
				return true
			}
		}
		return false
	})

	items = append(items, item)
	if err := r.doc.save(items); err != nil {
		return models.ContentItem{}, err
	}

	return item, nil
}

func (r *contentDocumentRepository) Update(_ context.Context, update models.ContentUpdate) (models.ContentItem, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	items := make([]models.ContentItem, 0)
	r.doc.load(&items)

	for i := range items {
		if items[i].ID != update.ID {
			continue
		}

		applyContentUpdate(&items[i], update)
		if err := r.doc.save(items); err != nil {
			return models.ContentItem{}, err
		}
		return items[i], nil
	}

	return models.ContentItem{}, ErrRecordNotFound
}

func (r *contentDocumentRepository) Delete(_ context.Context, id string) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	items := make([]models.ContentItem, 0)
	r.doc.load(&items)

	for i := range items {
		if items[i].ID != id {
			continue
		}

		items = append(items[:i], items[i+1:]...)
		return r.doc.save(items)
	}

	return ErrRecordNotFound
}

// applyContentUpdate merges non-nil fields of update over item. The id,
// type, publish date, and view counter are never touched by edits. A
// supplied non-empty Tags string replaces the stored list wholesale; an
// empty string keeps the previous tags.
func applyContentUpdate(item *models.ContentItem, update models.ContentUpdate) {
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Content != nil {
		item.Content = *update.Content
	}
	if update.Author != nil {
		item.Author = *update.Author
	}
	if update.Tags != nil && *update.Tags != "" {
		item.Tags = models.SplitTags(*update.Tags)
	}
	if update.IsPublished != nil {
		item.IsPublished = *update.IsPublished
	}
	if update.ImageURL != nil {
		item.ImageURL = *update.ImageURL
	}
}
