package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

func newTestAppSQLRepo(t *testing.T) (AppRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return NewAppSQLRepository(&DB{DB: db, logger: l}, l), mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func appRows(records ...models.AppRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "developer", "description", "icon_url", "screenshot_urls",
		"store", "status", "rating", "downloads", "views", "likes",
		"upload_date", "tags", "store_url", "version", "size_label", "category",
	})
	for _, rec := range records {
		screenshots, tags, _ := encodeLists(rec.ScreenshotURLs, rec.Tags)
		rows.AddRow(rec.ID, rec.Name, rec.Developer, rec.Description, rec.IconURL, screenshots,
			rec.Store, rec.Status, rec.Rating, rec.Downloads, rec.Views, rec.Likes,
			rec.UploadDate, tags, rec.StoreURL, rec.Version, rec.Size, rec.Category)
	}
	return rows
}

func TestAppSQLRepository_List(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	want := models.AppRecord{
		ID:             "1700000000000",
		Name:           "Weather Now",
		Store:          models.GooglePlay,
		Status:         models.StatusPublished,
		ScreenshotURLs: []string{"/uploads/s1.png"},
		Tags:           []string{"weather"},
	}

	mock.ExpectQuery("SELECT (.+) FROM apps").WillReturnRows(appRows(want))

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != want.Name {
		t.Errorf("expected name %q, got %q", want.Name, records[0].Name)
	}
	if len(records[0].ScreenshotURLs) != 1 || records[0].ScreenshotURLs[0] != "/uploads/s1.png" {
		t.Errorf("screenshot list did not round-trip: %v", records[0].ScreenshotURLs)
	}
}

func TestAppSQLRepository_GetNotFound(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM apps WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAppSQLRepository_CreateRetriesOnUniqueViolation(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO apps").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectExec("INSERT INTO apps").WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), models.AppRecord{Name: "Weather Now"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAppSQLRepository_CreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	for i := 0; i < maxCreateAttempts; i++ {
		mock.ExpectExec("INSERT INTO apps").WillReturnError(pgError(pgerrcode.UniqueViolation))
	}

	_, err := repo.Create(context.Background(), models.AppRecord{Name: "Weather Now"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAppSQLRepository_UpdateNotFound(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE apps SET").WillReturnResult(sqlmock.NewResult(0, 0))

	name := "renamed"
	_, err := repo.Update(context.Background(), "missing", models.AppUpdate{Name: &name})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAppSQLRepository_UpdateReturnsFreshRecord(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE apps SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM apps WHERE id").
		WithArgs("42").
		WillReturnRows(appRows(models.AppRecord{ID: "42", Name: "renamed"}))

	name := "renamed"
	updated, err := repo.Update(context.Background(), "42", models.AppUpdate{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "renamed" {
		t.Errorf("expected renamed record, got %q", updated.Name)
	}
}

func TestAppSQLRepository_DeleteNotFound(t *testing.T) {
	repo, mock, db := newTestAppSQLRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM apps").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
