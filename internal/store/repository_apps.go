package store

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

// appDocumentRepository is the JSON-document implementation of
// [AppRepository], backed by apps.json under the data directory.
type appDocumentRepository struct {
	doc    *jsonDocument
	logger *logger.Logger
}

// NewAppDocumentRepository constructs an [AppRepository] over
// <dataDir>/apps.json.
func NewAppDocumentRepository(dataDir string, log *logger.Logger) AppRepository {
	return &appDocumentRepository{
		doc:    newJSONDocument(filepath.Join(dataDir, "apps.json"), log),
		logger: log,
	}
}

func (r *appDocumentRepository) List(_ context.Context) ([]models.AppRecord, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	records := make([]models.AppRecord, 0)
	r.doc.load(&records)
	return records, nil
}

func (r *appDocumentRepository) Get(_ context.Context, id string) (models.AppRecord, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	records := make([]models.AppRecord, 0)
	r.doc.load(&records)

	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.AppRecord{}, ErrRecordNotFound
}

func (r *appDocumentRepository) Create(_ context.Context, record models.AppRecord) (models.AppRecord, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	records := make([]models.AppRecord, 0)
	r.doc.load(&records)

	record.ID = uniqueID(func(id string) bool {
		for _, rec := range records {
			if rec.ID == id {
				return true
			}
		}
		return false
	})

	records = append(records, record)
	if err := r.doc.save(records); err != nil {
		return models.AppRecord{}, err
	}

	return record, nil
}

func (r *appDocumentRepository) Update(_ context.Context, id string, update models.AppUpdate) (models.AppRecord, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	records := make([]models.AppRecord, 0)
	r.doc.load(&records)

	for i := range records {
		if records[i].ID != id {
			continue
		}

		applyAppUpdate(&records[i], update)
		if err := r.doc.save(records); err != nil {
			return models.AppRecord{}, err
		}
		return records[i], nil
	}

	return models.AppRecord{}, ErrRecordNotFound
}

func (r *appDocumentRepository) Delete(_ context.Context, id string) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	records := make([]models.AppRecord, 0)
	r.doc.load(&records)

	for i := range records {
		if records[i].ID != id {
			continue
		}

		records = append(records[:i], records[i+1:]...)
		return r.doc.save(records)
	}

	return ErrRecordNotFound
}

// applyAppUpdate merges non-nil fields of update over rec. ScreenshotURLs and
// Tags replace the stored lists wholesale when supplied; the id and upload
// date are never touched.
func applyAppUpdate(rec *models.AppRecord, update models.AppUpdate) {
	if update.Name != nil {
		rec.Name = *update.Name
	}
	if update.Developer != nil {
		rec.Developer = *update.Developer
	}
	if update.Description != nil {
		rec.Description = *update.Description
	}
	if update.IconURL != nil {
		rec.IconURL = *update.IconURL
	}
	if update.ScreenshotURLs != nil {
		rec.ScreenshotURLs = update.ScreenshotURLs
	}
	if update.Store != nil {
		rec.Store = *update.Store
	}
	if update.Status != nil {
		rec.Status = *update.Status
	}
	if update.Rating != nil {
		rec.Rating = *update.Rating
	}
	if update.Downloads != nil {
		rec.Downloads = *update.Downloads
	}
	if update.Tags != nil {
		rec.Tags = update.Tags
	}
	if update.StoreURL != nil {
		rec.StoreURL = *update.StoreURL
	}
	if update.Version != nil {
		rec.Version = *update.Version
	}
	if update.Size != nil {
		rec.Size = *update.Size
	}
	if update.Category != nil {
		rec.Category = *update.Category
	}
}

// uniqueID hands out a time-based token, re-generating while exists reports a
// collision with the current collection.
func uniqueID(exists func(string) bool) string {
	id := models.TimeID()
	for n := 1; exists(id); n++ {
		id = models.TimeID() + "-" + strconv.Itoa(n)
	}
	return id
}
