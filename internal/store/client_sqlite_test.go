package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

func newTestGalleryCache(t *testing.T) GalleryCache {
	t.Helper()
	cache, err := NewSQLiteGalleryCache(context.Background(), "", logger.Nop())
	require.NoError(t, err)
	return cache
}

func TestSQLiteGalleryCache_ReplaceAndList(t *testing.T) {
	cache := newTestGalleryCache(t)
	ctx := context.Background()

	apps := []models.AppRecord{
		{ID: "1", Name: "older", Store: models.GooglePlay, Status: models.StatusPublished, UploadDate: "2024-01-01"},
		{ID: "2", Name: "newer", Store: models.AppleStore, Status: models.StatusInReview, UploadDate: "2024-02-01",
			ScreenshotURLs: []string{"/uploads/s.png"}, Tags: []string{"game"}},
	}
	require.NoError(t, cache.ReplaceApps(ctx, apps))

	got, err := cache.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Name)
	assert.Equal(t, []string{"/uploads/s.png"}, got[0].ScreenshotURLs)

	// replacement drops everything not in the new set
	require.NoError(t, cache.ReplaceApps(ctx, apps[:1]))
	got, err = cache.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "older", got[0].Name)
}

func TestSQLiteGalleryCache_DeleteApp(t *testing.T) {
	cache := newTestGalleryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveApp(ctx, models.AppRecord{ID: "1", Name: "app"}))
	_, err := cache.ToggleFlag(ctx, "1", models.FlagFeatured)
	require.NoError(t, err)

	require.NoError(t, cache.DeleteApp(ctx, "1"))

	got, err := cache.ListApps(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	flagged, err := cache.FlaggedIDs(ctx, models.FlagFeatured)
	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestSQLiteGalleryCache_FlagsSurviveReplace(t *testing.T) {
	cache := newTestGalleryCache(t)
	ctx := context.Background()

	on, err := cache.ToggleFlag(ctx, "1", models.FlagEvent)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, cache.ReplaceApps(ctx, []models.AppRecord{{ID: "1", Name: "app"}}))

	flagged, err := cache.FlaggedIDs(ctx, models.FlagEvent)
	require.NoError(t, err)
	assert.True(t, flagged["1"])

	off, err := cache.ToggleFlag(ctx, "1", models.FlagEvent)
	require.NoError(t, err)
	assert.False(t, off)

	flagged, err = cache.FlaggedIDs(ctx, models.FlagEvent)
	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestSQLiteGalleryCache_Snapshot(t *testing.T) {
	cache := newTestGalleryCache(t)
	ctx := context.Background()

	apps, err := cache.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, apps)

	want := []models.AppRecord{{ID: "1", Name: "app", Tags: []string{"game"}}}
	require.NoError(t, cache.SaveSnapshot(ctx, want))

	apps, err = cache.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, apps)

	// a later snapshot replaces the previous one
	require.NoError(t, cache.SaveSnapshot(ctx, nil))
	apps, err = cache.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestSQLiteGalleryCache_Session(t *testing.T) {
	cache := newTestGalleryCache(t)
	ctx := context.Background()

	_, err := cache.Session(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	require.NoError(t, cache.SaveSession(ctx, "token-1"))
	token, err := cache.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// saving again replaces the single session row
	require.NoError(t, cache.SaveSession(ctx, "token-2"))
	token, err = cache.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)

	require.NoError(t, cache.ClearSession(ctx))
	_, err = cache.Session(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}
