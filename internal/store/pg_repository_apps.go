package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const appColumns = "id, name, developer, description, icon_url, screenshot_urls, store, status, rating, downloads, views, likes, upload_date, tags, store_url, version, size_label, category"

// appSQLRepository is the PostgreSQL implementation of [AppRepository].
// List ordering and the partial-merge semantics match the JSON-document
// backend, so the two are drop-in interchangeable.
type appSQLRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAppSQLRepository constructs an [AppRepository] over the apps table.
func NewAppSQLRepository(db *DB, log *logger.Logger) AppRepository {
	return &appSQLRepository{db: db, logger: log}
}

func (r *appSQLRepository) List(ctx context.Context) ([]models.AppRecord, error) {
	query, args, err := psql.Select(appColumns).From("apps").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AppRecord, 0)
	for rows.Next() {
		rec, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return records, nil
}

func (r *appSQLRepository) Get(ctx context.Context, id string) (models.AppRecord, error) {
	query, args, err := psql.Select(appColumns).From("apps").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rec, err := scanApp(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AppRecord{}, ErrRecordNotFound
	}
	return rec, err
}

// maxCreateAttempts caps id re-rolls when inserts keep colliding inside the
// same millisecond.
const maxCreateAttempts = 5

func (r *appSQLRepository) Create(ctx context.Context, record models.AppRecord) (models.AppRecord, error) {
	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		record.ID = models.TimeID()

		screenshots, tags, err := encodeLists(record.ScreenshotURLs, record.Tags)
		if err != nil {
			return models.AppRecord{}, err
		}

		query, args, err := psql.Insert("apps").
			Columns("id", "name", "developer", "description", "icon_url", "screenshot_urls",
				"store", "status", "rating", "downloads", "views", "likes",
				"upload_date", "tags", "store_url", "version", "size_label", "category").
			Values(record.ID, record.Name, record.Developer, record.Description, record.IconURL, screenshots,
				record.Store, record.Status, record.Rating, record.Downloads, record.Views, record.Likes,
				record.UploadDate, tags, record.StoreURL, record.Version, record.Size, record.Category).
			ToSql()
		if err != nil {
			return models.AppRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return record, nil
		}
		if isUniqueViolation(err) {
			// two creates inside the same millisecond; roll the token again
			lastErr = err
			continue
		}
		return models.AppRecord{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return models.AppRecord{}, fmt.Errorf("%w: %v", ErrExecutingQuery, lastErr)
}

func (r *appSQLRepository) Update(ctx context.Context, id string, update models.AppUpdate) (models.AppRecord, error) {
	builder := psql.Update("apps").Where(sq.Eq{"id": id})
	assigned := false

	set := func(column string, value any) {
		builder = builder.Set(column, value)
		assigned = true
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Developer != nil {
		set("developer", *update.Developer)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.IconURL != nil {
		set("icon_url", *update.IconURL)
	}
	if update.ScreenshotURLs != nil {
		encoded, err := json.Marshal(update.ScreenshotURLs)
		if err != nil {
			return models.AppRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		set("screenshot_urls", encoded)
	}
	if update.Store != nil {
		set("store", *update.Store)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}
	if update.Rating != nil {
		set("rating", *update.Rating)
	}
	if update.Downloads != nil {
		set("downloads", *update.Downloads)
	}
	if update.Tags != nil {
		encoded, err := json.Marshal(update.Tags)
		if err != nil {
			return models.AppRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		set("tags", encoded)
	}
	if update.StoreURL != nil {
		set("store_url", *update.StoreURL)
	}
	if update.Version != nil {
		set("version", *update.Version)
	}
	if update.Size != nil {
		set("size_label", *update.Size)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}

	if assigned {
		query, args, err := builder.ToSql()
		if err != nil {
			return models.AppRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return models.AppRecord{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return models.AppRecord{}, ErrRecordNotFound
		}
	}

	return r.Get(ctx, id)
}

func (r *appSQLRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("apps").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApp(row rowScanner) (models.AppRecord, error) {
	var (
		rec         models.AppRecord
		screenshots []byte
		tags        []byte
	)

	err := row.Scan(&rec.ID, &rec.Name, &rec.Developer, &rec.Description, &rec.IconURL, &screenshots,
		&rec.Store, &rec.Status, &rec.Rating, &rec.Downloads, &rec.Views, &rec.Likes,
		&rec.UploadDate, &tags, &rec.StoreURL, &rec.Version, &rec.Size, &rec.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AppRecord{}, err
		}
		return models.AppRecord{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if err = decodeLists(screenshots, tags, &rec.ScreenshotURLs, &rec.Tags); err != nil {
		return models.AppRecord{}, err
	}

	return rec, nil
}

func encodeLists(screenshots, tags []string) ([]byte, []byte, error) {
	encodedScreens, err := json.Marshal(screenshots)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return encodedScreens, encodedTags, nil
}

func decodeLists(screenshots, tags []byte, screensOut, tagsOut *[]string) error {
	if len(screenshots) > 0 {
		if err := json.Unmarshal(screenshots, screensOut); err != nil {
			return fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, tagsOut); err != nil {
			return fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
	}
	return nil
}
