package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/mock"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

func newTestSynchronizer(t *testing.T, ctrl *gomock.Controller) (GallerySynchronizer, *mock.MockGalleryCache, *mock.MockServerAdapter, *mock.MockMediaProber) {
	t.Helper()

	cache := mock.NewMockGalleryCache(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	prober := mock.NewMockMediaProber(ctrl)

	return NewGallerySynchronizer(cache, serverAdapter, prober, logger.Nop()), cache, serverAdapter, prober
}

func TestGallerySynchronizer_StartColdSeedsSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	cache.EXPECT().ListApps(ctx).Return([]models.AppRecord{}, nil)
	cache.EXPECT().ReplaceApps(ctx, gomock.Len(len(models.SampleApps()))).Return(nil)

	apps, err := sync.Start(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, len(models.SampleApps()))
}

func TestGallerySynchronizer_StartWarmZeroCorrections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, _, prober := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	cached := []models.AppRecord{{
		ID:             "1",
		IconURL:        "/uploads/icon.png",
		ScreenshotURLs: []string{"/uploads/s1.png"},
	}}
	cache.EXPECT().ListApps(ctx).Return(cached, nil)
	prober.EXPECT().Probe(ctx, "/uploads/icon.png").Return(true)
	prober.EXPECT().Probe(ctx, "/uploads/s1.png").Return(true)
	// no ReplaceApps call: nothing changed, nothing persisted

	apps, err := sync.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/icon.png", apps[0].IconURL)
}

func TestGallerySynchronizer_StartWarmReplacesBrokenMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, _, prober := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	cached := []models.AppRecord{{
		ID:             "1",
		IconURL:        "/uploads/gone.png",
		ScreenshotURLs: []string{"/uploads/ok.png", "/uploads/dead.png"},
	}}
	cache.EXPECT().ListApps(ctx).Return(cached, nil)
	prober.EXPECT().Probe(ctx, "/uploads/gone.png").Return(false)
	prober.EXPECT().Probe(ctx, "/uploads/ok.png").Return(true)
	prober.EXPECT().Probe(ctx, "/uploads/dead.png").Return(false)
	cache.EXPECT().ReplaceApps(ctx, gomock.Any()).Return(nil)

	apps, err := sync.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, placeholderURL, apps[0].IconURL)
	assert.Equal(t, []string{"/uploads/ok.png", placeholderURL}, apps[0].ScreenshotURLs)
}

func TestGallerySynchronizer_DeleteOptimisticSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, serverAdapter, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	apps := []models.AppRecord{{ID: "42", IconURL: "/uploads/i.png", ScreenshotURLs: []string{"/uploads/s.png"}}}
	cache.EXPECT().ListApps(ctx).Return(apps, nil)
	cache.EXPECT().SaveSnapshot(ctx, apps).Return(nil)
	cache.EXPECT().DeleteApp(ctx, "42").Return(nil)
	serverAdapter.EXPECT().DeleteApp(ctx, models.DeleteAppRequest{
		ID:             "42",
		IconURL:        "/uploads/i.png",
		ScreenshotURLs: []string{"/uploads/s.png"},
	}).Return(models.DeleteAppResult{Success: true}, nil)

	require.NoError(t, sync.DeleteApp(ctx, "42"))
}

func TestGallerySynchronizer_DeleteRollsBackOnServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, serverAdapter, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	apps := []models.AppRecord{{ID: "42"}}
	serverErr := errors.New("boom")

	cache.EXPECT().ListApps(ctx).Return(apps, nil)
	cache.EXPECT().SaveSnapshot(ctx, apps).Return(nil)
	cache.EXPECT().DeleteApp(ctx, "42").Return(nil)
	serverAdapter.EXPECT().DeleteApp(ctx, gomock.Any()).Return(models.DeleteAppResult{}, serverErr)
	cache.EXPECT().LoadSnapshot(ctx).Return(apps, nil)
	cache.EXPECT().ReplaceApps(ctx, apps).Return(nil)

	err := sync.DeleteApp(ctx, "42")
	assert.ErrorIs(t, err, serverErr)
}

func TestGallerySynchronizer_DeleteUnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	cache.EXPECT().ListApps(ctx).Return([]models.AppRecord{{ID: "1"}}, nil)

	assert.ErrorIs(t, sync.DeleteApp(ctx, "missing"), store.ErrRecordNotFound)
}

func TestGallerySynchronizer_RefreshReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, serverAdapter, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	fresh := []models.AppRecord{{ID: "1", UploadDate: "2024-01-01"}, {ID: "2", UploadDate: "2024-02-01"}}
	serverAdapter.EXPECT().ListApps(ctx).Return(fresh, nil)
	cache.EXPECT().ReplaceApps(ctx, fresh).Return(nil)

	apps, err := sync.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "2", apps[0].ID)
}

func TestGallerySynchronizer_CreateCachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, serverAdapter, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	record := models.AppRecord{Name: "Weather Now"}
	created := models.AppRecord{ID: "77", Name: "Weather Now"}
	icon := &store.Blob{Filename: "icon.png"}

	serverAdapter.EXPECT().CreateApp(ctx, record, icon, nil).Return(created, nil)
	cache.EXPECT().SaveApp(ctx, created).Return(nil)

	got, err := sync.CreateApp(ctx, record, icon, nil)
	require.NoError(t, err)
	assert.Equal(t, "77", got.ID)
}

func TestGallerySynchronizer_Toggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	cache.EXPECT().ToggleFlag(ctx, "1", models.FlagFeatured).Return(true, nil)
	cache.EXPECT().ToggleFlag(ctx, "1", models.FlagEvent).Return(false, nil)

	on, err := sync.ToggleFeatured(ctx, "1")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = sync.ToggleEvent(ctx, "1")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestGallerySynchronizer_Marks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, cache, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	cache.EXPECT().FlaggedIDs(ctx, models.FlagFeatured).Return(map[string]bool{"1": true}, nil)
	cache.EXPECT().FlaggedIDs(ctx, models.FlagEvent).Return(map[string]bool{"2": true}, nil)

	featured, events, err := sync.Marks(ctx)
	require.NoError(t, err)
	assert.True(t, featured["1"])
	assert.True(t, events["2"])
}
