package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

func newTestContentRepo(t *testing.T) ContentRepository {
	t.Helper()
	return NewContentDocumentRepository(t.TempDir(), logger.Nop())
}

func seedContent(t *testing.T, repo ContentRepository, item models.ContentItem) models.ContentItem {
	t.Helper()
	created, err := repo.Create(context.Background(), item)
	require.NoError(t, err)
	return created
}

func TestContentDocumentRepository_ListFilters(t *testing.T) {
	repo := newTestContentRepo(t)
	ctx := context.Background()

	seedContent(t, repo, models.ContentItem{Title: "launch story", Type: models.AppStory, IsPublished: true})
	seedContent(t, repo, models.ContentItem{Title: "draft story", Type: models.AppStory, IsPublished: false})
	seedContent(t, repo, models.ContentItem{Title: "press note", Type: models.News, IsPublished: true})

	all, err := repo.List(ctx, models.ContentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	stories, err := repo.List(ctx, models.ContentFilter{Type: models.AppStory})
	require.NoError(t, err)
	assert.Len(t, stories, 2)

	public, err := repo.List(ctx, models.ContentFilter{Type: models.AppStory, PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "launch story", public[0].Title)
}

func TestContentDocumentRepository_UpdateKeepsImmutableFields(t *testing.T) {
	repo := newTestContentRepo(t)
	ctx := context.Background()

	created := seedContent(t, repo, models.ContentItem{
		Title:       "launch story",
		Type:        models.AppStory,
		PublishDate: "2024-03-01",
		Views:       7,
	})

	published := true
	updated, err := repo.Update(ctx, models.ContentUpdate{
		ID:          created.ID,
		Title:       strPtr("launch story v2"),
		Tags:        strPtr("release, , launch"),
		IsPublished: &published,
	})
	require.NoError(t, err)

	assert.Equal(t, "launch story v2", updated.Title)
	assert.True(t, updated.IsPublished)
	// empty entries from the comma list are kept as-is
	assert.Equal(t, []string{"release", "", "launch"}, updated.Tags)
	// never editable
	assert.Equal(t, "2024-03-01", updated.PublishDate)
	assert.Equal(t, 7, updated.Views)
	assert.Equal(t, models.AppStory, updated.Type)
}

func TestContentDocumentRepository_UpdateEmptyTagsKeepsPrevious(t *testing.T) {
	repo := newTestContentRepo(t)
	ctx := context.Background()

	created := seedContent(t, repo, models.ContentItem{
		Title: "launch story",
		Type:  models.AppStory,
		Tags:  []string{"release", "launch"},
	})

	updated, err := repo.Update(ctx, models.ContentUpdate{
		ID:    created.ID,
		Title: strPtr("launch story v2"),
		Tags:  strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"release", "launch"}, updated.Tags)
}

func TestContentDocumentRepository_UpdateNotFound(t *testing.T) {
	repo := newTestContentRepo(t)

	_, err := repo.Update(context.Background(), models.ContentUpdate{ID: "missing", Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestContentDocumentRepository_Delete(t *testing.T) {
	repo := newTestContentRepo(t)
	ctx := context.Background()

	created := seedContent(t, repo, models.ContentItem{Title: "temp", Type: models.News})

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrRecordNotFound)
}
