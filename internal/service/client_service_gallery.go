package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/gongmyung/app-showcase/internal/adapter"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

// placeholderURL replaces media URLs that fail the warm-start probe.
const placeholderURL = "/placeholder.svg"

type gallerySynchronizer struct {
	cache   store.GalleryCache
	adapter adapter.ServerAdapter
	prober  adapter.MediaProber
	logger  *logger.Logger
}

// NewGallerySynchronizer wires the local cache, the server adapter, and the
// media prober into the synchronizer.
func NewGallerySynchronizer(cache store.GalleryCache, serverAdapter adapter.ServerAdapter, prober adapter.MediaProber, logger *logger.Logger) GallerySynchronizer {
	return &gallerySynchronizer{cache: cache, adapter: serverAdapter, prober: prober, logger: logger}
}

func (g *gallerySynchronizer) Start(ctx context.Context) ([]models.AppRecord, error) {
	apps, err := g.cache.ListApps(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cached gallery failed: %w", err)
	}

	if len(apps) == 0 {
		// cold start: seed the built-in samples and skip probing, their
		// URLs are bundled assets
		apps = models.SampleApps()
		if err = g.cache.ReplaceApps(ctx, apps); err != nil {
			return nil, fmt.Errorf("seeding gallery failed: %w", err)
		}
		g.logger.Info().Int("apps", len(apps)).Msg("gallery seeded with samples")
		return sortApps(apps), nil
	}

	corrected := 0
	for i := range apps {
		if g.validateMedia(ctx, &apps[i]) {
			corrected++
		}
	}

	if corrected > 0 {
		if err = g.cache.ReplaceApps(ctx, apps); err != nil {
			return nil, fmt.Errorf("persisting validated gallery failed: %w", err)
		}
		g.logger.Info().Int("corrected", corrected).Msg("broken media replaced with placeholder")
	}

	return sortApps(apps), nil
}

// validateMedia probes the record's media URLs in place. Reports whether
// anything was replaced.
func (g *gallerySynchronizer) validateMedia(ctx context.Context, app *models.AppRecord) bool {
	changed := false

	if app.IconURL != "" && app.IconURL != placeholderURL && !g.prober.Probe(ctx, app.IconURL) {
		app.IconURL = placeholderURL
		changed = true
	}
	for i, url := range app.ScreenshotURLs {
		if url != "" && url != placeholderURL && !g.prober.Probe(ctx, url) {
			app.ScreenshotURLs[i] = placeholderURL
			changed = true
		}
	}

	return changed
}

func (g *gallerySynchronizer) Apps(ctx context.Context) ([]models.AppRecord, error) {
	apps, err := g.cache.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	return sortApps(apps), nil
}

func (g *gallerySynchronizer) Refresh(ctx context.Context) ([]models.AppRecord, error) {
	apps, err := g.adapter.ListApps(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing gallery from server failed: %w", err)
	}

	if err = g.cache.ReplaceApps(ctx, apps); err != nil {
		return nil, fmt.Errorf("caching refreshed gallery failed: %w", err)
	}

	return sortApps(apps), nil
}

func (g *gallerySynchronizer) CreateApp(ctx context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
	created, err := g.adapter.CreateApp(ctx, record, icon, screenshots)
	if err != nil {
		return models.AppRecord{}, err
	}

	if err = g.cache.SaveApp(ctx, created); err != nil {
		return models.AppRecord{}, fmt.Errorf("caching created app failed: %w", err)
	}

	return created, nil
}

func (g *gallerySynchronizer) UpdateApp(ctx context.Context, id string, update models.AppUpdate, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
	updated, err := g.adapter.UpdateApp(ctx, id, update, icon, screenshots)
	if err != nil {
		return models.AppRecord{}, err
	}

	if err = g.cache.SaveApp(ctx, updated); err != nil {
		return models.AppRecord{}, fmt.Errorf("caching updated app failed: %w", err)
	}

	return updated, nil
}

// DeleteApp runs the optimistic delete protocol: snapshot the last known-good
// list, drop the app locally, then run the server flow. A server failure
// restores the snapshot so the local gallery never silently diverges.
func (g *gallerySynchronizer) DeleteApp(ctx context.Context, id string) error {
	apps, err := g.cache.ListApps(ctx)
	if err != nil {
		return fmt.Errorf("loading gallery before delete failed: %w", err)
	}

	var target *models.AppRecord
	for i := range apps {
		if apps[i].ID == id {
			target = &apps[i]
			break
		}
	}
	if target == nil {
		return store.ErrRecordNotFound
	}

	if err = g.cache.SaveSnapshot(ctx, apps); err != nil {
		return fmt.Errorf("saving rollback snapshot failed: %w", err)
	}

	if err = g.cache.DeleteApp(ctx, id); err != nil {
		return fmt.Errorf("local delete failed: %w", err)
	}

	_, err = g.adapter.DeleteApp(ctx, models.DeleteAppRequest{
		ID:             target.ID,
		IconURL:        target.IconURL,
		ScreenshotURLs: target.ScreenshotURLs,
	})
	if err != nil {
		g.logger.Err(err).Str("id", id).Msg("server delete failed, rolling back local state")

		snapshot, loadErr := g.cache.LoadSnapshot(ctx)
		if loadErr != nil {
			return fmt.Errorf("server delete failed and snapshot load failed: %w", loadErr)
		}
		if restoreErr := g.cache.ReplaceApps(ctx, snapshot); restoreErr != nil {
			return fmt.Errorf("server delete failed and rollback failed: %w", restoreErr)
		}

		return fmt.Errorf("server delete failed, local state restored: %w", err)
	}

	return nil
}

func (g *gallerySynchronizer) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	return g.cache.ToggleFlag(ctx, id, models.FlagFeatured)
}

func (g *gallerySynchronizer) ToggleEvent(ctx context.Context, id string) (bool, error) {
	return g.cache.ToggleFlag(ctx, id, models.FlagEvent)
}

func (g *gallerySynchronizer) Marks(ctx context.Context) (map[string]bool, map[string]bool, error) {
	featured, err := g.cache.FlaggedIDs(ctx, models.FlagFeatured)
	if err != nil {
		return nil, nil, err
	}

	events, err := g.cache.FlaggedIDs(ctx, models.FlagEvent)
	if err != nil {
		return nil, nil, err
	}

	return featured, events, nil
}

func sortApps(apps []models.AppRecord) []models.AppRecord {
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].UploadDate != apps[j].UploadDate {
			return apps[i].UploadDate > apps[j].UploadDate
		}
		return apps[i].ID > apps[j].ID
	})
	return apps
}
