package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

type stubContentRepository struct {
	items     []models.ContentItem
	created   []models.ContentItem
	updates   []models.ContentUpdate
	deleted   []string
	deleteErr error
}

func (s *stubContentRepository) List(_ context.Context, _ models.ContentFilter) ([]models.ContentItem, error) {
	return s.items, nil
}

func (s *stubContentRepository) Create(_ context.Context, item models.ContentItem) (models.ContentItem, error) {
	item.ID = "created-1"
	s.created = append(s.created, item)
	return item, nil
}

func (s *stubContentRepository) Update(_ context.Context, update models.ContentUpdate) (models.ContentItem, error) {
	s.updates = append(s.updates, update)
	item := models.ContentItem{ID: update.ID}
	if update.ImageURL != nil {
		item.ImageURL = *update.ImageURL
	}
	return item, nil
}

func (s *stubContentRepository) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestContentService_CreateStampsPublishDate(t *testing.T) {
	repo := &stubContentRepository{}
	svc := NewContentService(repo, &stubFileStore{}, logger.Nop())

	before := time.Now().Add(-time.Second)
	created, err := svc.CreateContent(context.Background(), models.ContentForm{
		Title: "launch story",
		Type:  models.AppStory,
		Tags:  "release, , launch",
	}, nil)
	require.NoError(t, err)

	stamp, err := time.Parse(time.RFC3339, created.PublishDate)
	require.NoError(t, err)
	assert.True(t, stamp.After(before))
	assert.Zero(t, created.Views)
	assert.Equal(t, []string{"release", "", "launch"}, created.Tags)
}

func TestContentService_CreateValidation(t *testing.T) {
	svc := NewContentService(&stubContentRepository{}, &stubFileStore{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.CreateContent(ctx, models.ContentForm{Type: models.News}, nil)
	assert.ErrorIs(t, err, ErrValidationTitleRequired)

	_, err = svc.CreateContent(ctx, models.ContentForm{Title: "x", Type: "blog"}, nil)
	assert.ErrorIs(t, err, ErrValidationTypeInvalid)
}

func TestContentService_CreateWithImage(t *testing.T) {
	repo := &stubContentRepository{}
	files := &stubFileStore{}
	svc := NewContentService(repo, files, logger.Nop())

	created, err := svc.CreateContent(context.Background(), models.ContentForm{
		Title: "with image", Type: models.News,
	}, blobPtr("cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/content-images/1.png", created.ImageURL)
}

func TestContentService_UpdateWithImage(t *testing.T) {
	repo := &stubContentRepository{}
	files := &stubFileStore{}
	svc := NewContentService(repo, files, logger.Nop())

	updated, err := svc.UpdateContent(context.Background(), models.ContentUpdate{ID: "9"}, blobPtr("cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/content-images/1.png", updated.ImageURL)
}

func TestContentService_UpdateValidation(t *testing.T) {
	svc := NewContentService(&stubContentRepository{}, &stubFileStore{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.UpdateContent(ctx, models.ContentUpdate{}, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	empty := ""
	_, err = svc.UpdateContent(ctx, models.ContentUpdate{ID: "9", Title: &empty}, nil)
	assert.ErrorIs(t, err, ErrValidationTitleRequired)
}

func TestContentService_ListSortsNewestFirst(t *testing.T) {
	repo := &stubContentRepository{items: []models.ContentItem{
		{ID: "1", PublishDate: "2024-01-01T00:00:00Z"},
		{ID: "3", PublishDate: "2024-03-01T00:00:00Z"},
		{ID: "2", PublishDate: "2024-02-01T00:00:00Z"},
	}}
	svc := NewContentService(repo, &stubFileStore{}, logger.Nop())

	items, err := svc.ListContents(context.Background(), models.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "1", items[2].ID)
}

func TestContentService_Delete(t *testing.T) {
	repo := &stubContentRepository{}
	svc := NewContentService(repo, &stubFileStore{}, logger.Nop())

	require.NoError(t, svc.DeleteContent(context.Background(), "9"))
	assert.Equal(t, []string{"9"}, repo.deleted)

	assert.ErrorIs(t, svc.DeleteContent(context.Background(), ""), ErrInvalidDataProvided)

	repo.deleteErr = store.ErrRecordNotFound
	assert.ErrorIs(t, svc.DeleteContent(context.Background(), "missing"), store.ErrRecordNotFound)
}
