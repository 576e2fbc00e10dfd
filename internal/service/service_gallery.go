package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

const (
	iconPrefix       = "icon"
	screenshotPrefix = "screenshot"
)

type galleryService struct {
	apps   store.AppRepository
	files  store.FileStore
	logger *logger.Logger
}

// NewGalleryService wires the app repository and the file store into the
// media-aware gallery flows.
func NewGalleryService(apps store.AppRepository, files store.FileStore, logger *logger.Logger) GalleryService {
	return &galleryService{apps: apps, files: files, logger: logger}
}

// ListApps returns every app record, newest upload first.
func (g *galleryService) ListApps(ctx context.Context) ([]models.AppRecord, error) {
	records, err := g.apps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing apps failed: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].UploadDate != records[j].UploadDate {
			return records[i].UploadDate > records[j].UploadDate
		}
		return records[i].ID > records[j].ID
	})

	return records, nil
}

func (g *galleryService) GetApp(ctx context.Context, id string) (models.AppRecord, error) {
	return g.apps.Get(ctx, id)
}

// CreateApp stores the supplied media first and the record last: any blob
// failure aborts before the record exists. Blobs already written when a later
// one fails are not reclaimed.
func (g *galleryService) CreateApp(ctx context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateAppRecord(record); err != nil {
		return models.AppRecord{}, err
	}
	if icon == nil {
		return models.AppRecord{}, ErrValidationIconRequired
	}

	iconURL, err := g.files.Store(ctx, *icon, iconPrefix)
	if err != nil {
		log.Err(err).Msg("icon upload failed")
		return models.AppRecord{}, err
	}
	record.IconURL = iconURL

	record.ScreenshotURLs = make([]string, 0, len(screenshots))
	for _, shot := range screenshots {
		url, err := g.files.Store(ctx, shot, screenshotPrefix)
		if err != nil {
			log.Err(err).Str("filename", shot.Filename).Msg("screenshot upload failed")
			return models.AppRecord{}, err
		}
		record.ScreenshotURLs = append(record.ScreenshotURLs, url)
	}

	if record.UploadDate == "" {
		record.UploadDate = time.Now().Format("2006-01-02")
	}
	record.Views = 0
	record.Likes = 0

	created, err := g.apps.Create(ctx, record)
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("app creation failed: %w", err)
	}

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("app created")
	return created, nil
}

// UpdateApp applies a partial update. A supplied icon or screenshot set is
// stored and wholesale-replaces the recorded URLs; the previous files are not
// reclaimed.
func (g *galleryService) UpdateApp(ctx context.Context, id string, update models.AppUpdate, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateAppUpdate(update); err != nil {
		return models.AppRecord{}, err
	}

	if icon != nil {
		iconURL, err := g.files.Store(ctx, *icon, iconPrefix)
		if err != nil {
			log.Err(err).Msg("icon upload failed")
			return models.AppRecord{}, err
		}
		update.IconURL = &iconURL
	}

	if len(screenshots) > 0 {
		urls := make([]string, 0, len(screenshots))
		for _, shot := range screenshots {
			url, err := g.files.Store(ctx, shot, screenshotPrefix)
			if err != nil {
				log.Err(err).Str("filename", shot.Filename).Msg("screenshot upload failed")
				return models.AppRecord{}, err
			}
			urls = append(urls, url)
		}
		update.ScreenshotURLs = urls
	}

	updated, err := g.apps.Update(ctx, id, update)
	if err != nil {
		return models.AppRecord{}, err
	}

	log.Info().Str("id", updated.ID).Msg("app updated")
	return updated, nil
}

// DeleteApp removes the app's media best-effort, collecting per-file
// outcomes, then deletes the record. Record removal is authoritative: a
// failed file removal never blocks it.
func (g *galleryService) DeleteApp(ctx context.Context, request models.DeleteAppRequest) (models.DeleteAppResult, error) {
	log := logger.FromContext(ctx)

	if request.ID == "" {
		return models.DeleteAppResult{}, ErrInvalidDataProvided
	}

	result := models.DeleteAppResult{
		DeletedFiles: make([]string, 0, len(request.ScreenshotURLs)+1),
		Errors:       make([]string, 0),
	}

	urls := make([]string, 0, len(request.ScreenshotURLs)+1)
	if request.IconURL != "" {
		urls = append(urls, request.IconURL)
	}
	urls = append(urls, request.ScreenshotURLs...)

	for _, url := range urls {
		if err := g.files.Remove(ctx, url); err != nil {
			log.Err(err).Str("url", url).Msg("media removal failed")
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", url, err))
			continue
		}
		result.DeletedFiles = append(result.DeletedFiles, url)
	}

	// Removal is idempotent: an id that is already gone counts as deleted.
	if err := g.apps.Delete(ctx, request.ID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		result.Errors = append(result.Errors, fmt.Sprintf("record %s: %v", request.ID, err))
		result.Message = "Failed to delete app record"
		return result, err
	}

	result.Success = true
	result.Message = "App deleted successfully"
	if len(result.Errors) > 0 {
		result.Message = "App deleted, some files could not be removed"
	}

	log.Info().Str("id", request.ID).Int("deletedFiles", len(result.DeletedFiles)).
		Int("errors", len(result.Errors)).Msg("app deleted")
	return result, nil
}

// UploadFile is the generic asset upload flow behind POST /api/upload.
func (g *galleryService) UploadFile(ctx context.Context, blob store.Blob, prefix string) (models.UploadResult, error) {
	if prefix == "" {
		prefix = "file"
	}

	url, err := g.files.Store(ctx, blob, prefix)
	if err != nil {
		return models.UploadResult{}, err
	}

	return models.UploadResult{
		Success:  true,
		URL:      url,
		FileName: blob.Filename,
		Size:     int64(len(blob.Data)),
	}, nil
}

// UploadContentImage stores a blob under the content-images category.
func (g *galleryService) UploadContentImage(ctx context.Context, blob store.Blob) (models.ImageUploadResult, error) {
	url, err := g.files.StoreInCategory(ctx, blob, "content-images")
	if err != nil {
		return models.ImageUploadResult{}, err
	}

	return models.ImageUploadResult{URL: url, Filename: blob.Filename}, nil
}

func (g *galleryService) DeleteFile(ctx context.Context, url string) error {
	if url == "" {
		return ErrInvalidDataProvided
	}
	return g.files.Remove(ctx, url)
}

func validateAppRecord(record models.AppRecord) error {
	if record.Name == "" {
		return ErrValidationNameRequired
	}
	if !models.ValidStore(record.Store) {
		return ErrValidationStoreInvalid
	}
	if !models.ValidStatus(record.Status) {
		return ErrValidationStatusInvalid
	}
	return nil
}

func validateAppUpdate(update models.AppUpdate) error {
	if update.Name != nil && *update.Name == "" {
		return ErrValidationNameRequired
	}
	if update.Store != nil && !models.ValidStore(*update.Store) {
		return ErrValidationStoreInvalid
	}
	if update.Status != nil && !models.ValidStatus(*update.Status) {
		return ErrValidationStatusInvalid
	}
	return nil
}
