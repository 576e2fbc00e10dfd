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

const contentColumns = "id, title, content, author, publish_date, type, image_url, tags, is_published, views"

// contentSQLRepository is the PostgreSQL implementation of
// [ContentRepository].
type contentSQLRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContentSQLRepository constructs a [ContentRepository] over the contents
// table.
func NewContentSQLRepository(db *DB, log *logger.Logger) ContentRepository {
	return &contentSQLRepository{db: db, logger: log}
}

func (r *contentSQLRepository) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	builder := psql.Select(contentColumns).From("contents")
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"type": filter.Type})
	}
	if filter.PublishedOnly {
		builder = builder.Where(sq.Eq{"is_published": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ContentItem, 0)
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return items, nil
}

func (r *contentSQLRepository) Create(ctx context.Context, item models.ContentItem) (models.ContentItem, error) {
	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		item.ID = models.TimeID()

		tags, err := json.Marshal(item.Tags)
		if err != nil {
			return models.ContentItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		query, args, err := psql.Insert("contents").
			Columns("id", "title", "content", "author", "publish_date", "type", "image_url", "tags", "is_published", "views").
			Values(item.ID, item.Title, item.Content, item.Author, item.PublishDate, item.Type, item.ImageURL, tags, item.IsPublished, item.Views).
			ToSql()
		if err != nil {
			return models.ContentItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return item, nil
		}
		if isUniqueViolation(err) {
			lastErr = err
			continue
		}
		return models.ContentItem{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return models.ContentItem{}, fmt.Errorf("%w: %v", ErrExecutingQuery, lastErr)
}

func (r *contentSQLRepository) Update(ctx context.Context, update models.ContentUpdate) (models.ContentItem, error) {
	builder := psql.Update("contents").Where(sq.Eq{"id": update.ID})
	assigned := false

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		assigned = true
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		assigned = true
	}
	if update.Author != nil {
		builder = builder.Set("author", *update.Author)
		assigned = true
	}
	if update.Tags != nil && *update.Tags != "" {
		encoded, err := json.Marshal(models.SplitTags(*update.Tags))
		if err != nil {
			return models.ContentItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		builder = builder.Set("tags", encoded)
		assigned = true
	}
	if update.IsPublished != nil {
		builder = builder.Set("is_published", *update.IsPublished)
		assigned = true
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
		assigned = true
	}

	if assigned {
		query, args, err := builder.ToSql()
		if err != nil {
			return models.ContentItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return models.ContentItem{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return models.ContentItem{}, ErrRecordNotFound
		}
	}

	return r.get(ctx, update.ID)
}

func (r *contentSQLRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("contents").Where(sq.Eq{"id": id}).ToSql()
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

func (r *contentSQLRepository) get(ctx context.Context, id string) (models.ContentItem, error) {
	query, args, err := psql.Select(contentColumns).From("contents").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	item, err := scanContent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContentItem{}, ErrRecordNotFound
	}
	return item, err
}

func scanContent(row rowScanner) (models.ContentItem, error) {
	var (
		item models.ContentItem
		tags []byte
	)

	err := row.Scan(&item.ID, &item.Title, &item.Content, &item.Author, &item.PublishDate,
		&item.Type, &item.ImageURL, &tags, &item.IsPublished, &item.Views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContentItem{}, err
		}
		return models.ContentItem{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if len(tags) > 0 {
		if err = json.Unmarshal(tags, &item.Tags); err != nil {
			return models.ContentItem{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
	}

	return item, nil
}
