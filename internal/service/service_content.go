package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

type contentService struct {
	contents store.ContentRepository
	files    store.FileStore
	logger   *logger.Logger
}

// NewContentService wires the content repository and the file store into the
// article lifecycle.
func NewContentService(contents store.ContentRepository, files store.FileStore, logger *logger.Logger) ContentService {
	return &contentService{contents: contents, files: files, logger: logger}
}

// ListContents returns matching articles, newest publish date first.
func (c *contentService) ListContents(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	items, err := c.contents.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing contents failed: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PublishDate != items[j].PublishDate {
			return items[i].PublishDate > items[j].PublishDate
		}
		return items[i].ID > items[j].ID
	})

	return items, nil
}

// CreateContent turns the form into a stored article. The publish date is
// stamped here and never changes afterwards; the view counter starts at zero.
// An optional image is stored under content-images before the record write.
func (c *contentService) CreateContent(ctx context.Context, form models.ContentForm, image *store.Blob) (models.ContentItem, error) {
	log := logger.FromContext(ctx)

	if form.Title == "" {
		return models.ContentItem{}, ErrValidationTitleRequired
	}
	if !models.ValidContentType(form.Type) {
		return models.ContentItem{}, ErrValidationTypeInvalid
	}

	item := models.ContentItem{
		Title:       form.Title,
		Content:     form.Content,
		Author:      form.Author,
		PublishDate: time.Now().Format(time.RFC3339),
		Type:        form.Type,
		ImageURL:    form.ImageURL,
		Tags:        models.SplitTags(form.Tags),
		IsPublished: form.IsPublished,
		Views:       0,
	}

	if image != nil {
		url, err := c.files.StoreInCategory(ctx, *image, "content-images")
		if err != nil {
			log.Err(err).Msg("content image upload failed")
			return models.ContentItem{}, err
		}
		item.ImageURL = url
	}

	created, err := c.contents.Create(ctx, item)
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("content creation failed: %w", err)
	}

	log.Info().Str("id", created.ID).Str("type", string(created.Type)).Msg("content created")
	return created, nil
}

// UpdateContent applies a partial edit. Type, publish date, and views are
// not editable. A supplied image replaces the recorded URL; the previous
// file is not reclaimed.
func (c *contentService) UpdateContent(ctx context.Context, update models.ContentUpdate, image *store.Blob) (models.ContentItem, error) {
	log := logger.FromContext(ctx)

	if update.ID == "" {
		return models.ContentItem{}, ErrInvalidDataProvided
	}
	if update.Title != nil && *update.Title == "" {
		return models.ContentItem{}, ErrValidationTitleRequired
	}

	if image != nil {
		url, err := c.files.StoreInCategory(ctx, *image, "content-images")
		if err != nil {
			log.Err(err).Msg("content image upload failed")
			return models.ContentItem{}, err
		}
		update.ImageURL = &url
	}

	updated, err := c.contents.Update(ctx, update)
	if err != nil {
		return models.ContentItem{}, err
	}

	log.Info().Str("id", updated.ID).Msg("content updated")
	return updated, nil
}

func (c *contentService) DeleteContent(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}
	return c.contents.Delete(ctx, id)
}
