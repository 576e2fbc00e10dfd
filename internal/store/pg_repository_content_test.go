package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

func newTestContentSQLRepo(t *testing.T) (ContentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return NewContentSQLRepository(&DB{DB: db, logger: l}, l), mock, db
}

func contentRows(items ...models.ContentItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "content", "author", "publish_date",
		"type", "image_url", "tags", "is_published", "views",
	})
	for _, item := range items {
		tags, _ := json.Marshal(item.Tags)
		rows.AddRow(item.ID, item.Title, item.Content, item.Author, item.PublishDate,
			item.Type, item.ImageURL, tags, item.IsPublished, item.Views)
	}
	return rows
}

func TestContentSQLRepository_ListWithFilter(t *testing.T) {
	repo, mock, db := newTestContentSQLRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM contents WHERE type = (.+) AND is_published = ").
		WithArgs(models.AppStory, true).
		WillReturnRows(contentRows(models.ContentItem{
			ID: "1", Title: "launch story", Type: models.AppStory, IsPublished: true,
		}))

	items, err := repo.List(context.Background(), models.ContentFilter{Type: models.AppStory, PublishedOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "launch story" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestContentSQLRepository_ListUnfiltered(t *testing.T) {
	repo, mock, db := newTestContentSQLRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM contents").
		WillReturnRows(contentRows())

	items, err := repo.List(context.Background(), models.ContentFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestContentSQLRepository_UpdateSplitsTags(t *testing.T) {
	repo, mock, db := newTestContentSQLRepo(t)
	defer db.Close()

	encoded, _ := json.Marshal([]string{"release", "launch"})
	mock.ExpectExec("UPDATE contents SET").
		WithArgs(encoded, "9").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM contents WHERE id").
		WithArgs("9").
		WillReturnRows(contentRows(models.ContentItem{ID: "9", Tags: []string{"release", "launch"}}))

	tags := "release,launch"
	updated, err := repo.Update(context.Background(), models.ContentUpdate{ID: "9", Tags: &tags})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("expected split tags, got %v", updated.Tags)
	}
}

func TestContentSQLRepository_DeleteNotFound(t *testing.T) {
	repo, mock, db := newTestContentSQLRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contents").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
