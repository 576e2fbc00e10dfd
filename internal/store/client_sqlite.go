package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

// ErrLocalSessionNotFound is returned when no admin token has been saved yet.
var ErrLocalSessionNotFound = errors.New("local session not found")

const galleryCacheSchema = `
CREATE TABLE IF NOT EXISTS apps (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	developer       TEXT NOT NULL DEFAULT '',
	description     TEXT NOT NULL DEFAULT '',
	icon_url        TEXT NOT NULL DEFAULT '',
	screenshot_urls TEXT NOT NULL DEFAULT '[]',
	store           TEXT NOT NULL,
	status          TEXT NOT NULL,
	rating          REAL NOT NULL DEFAULT 0,
	downloads       TEXT NOT NULL DEFAULT '',
	views           INTEGER NOT NULL DEFAULT 0,
	likes           INTEGER NOT NULL DEFAULT 0,
	upload_date     TEXT NOT NULL DEFAULT '',
	tags            TEXT NOT NULL DEFAULT '[]',
	store_url       TEXT NOT NULL DEFAULT '',
	version         TEXT NOT NULL DEFAULT '',
	size_label      TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS app_flags (
	app_id TEXT NOT NULL,
	flag   TEXT NOT NULL,
	PRIMARY KEY (app_id, flag)
);

CREATE TABLE IF NOT EXISTS snapshots (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS session (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL
);
`

type sqliteGalleryCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteGalleryCache opens (creating if necessary) the cache database at
// path and ensures the schema. An empty path opens an in-memory cache.
func NewSQLiteGalleryCache(ctx context.Context, path string, log *logger.Logger) (GalleryCache, error) {
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewSQLiteGalleryCache").Msg("error creating cache database file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteGalleryCache").Msg("error opening cache database")
		return nil, fmt.Errorf("error opening cache database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteGalleryCache").Msg("error connecting cache database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, galleryCacheSchema); err != nil {
		log.Err(err).Str("func", "NewSQLiteGalleryCache").Msg("error ensuring cache schema")
		return nil, fmt.Errorf("error ensuring cache schema: %w", err)
	}
	log.Debug().Str("func", "NewSQLiteGalleryCache").Msg("gallery cache ready")

	return &sqliteGalleryCache{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating cache directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating cache file: %w", err)
		}
		f.Close()
	}

	return nil
}

const insertCachedApp = `INSERT OR REPLACE INTO apps
	(id, name, developer, description, icon_url, screenshot_urls, store, status,
	 rating, downloads, views, likes, upload_date, tags, store_url, version, size_label, category)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ReplaceApps swaps the whole cached gallery for apps in one transaction.
// Flags and the session are untouched.
func (c *sqliteGalleryCache) ReplaceApps(ctx context.Context, apps []models.AppRecord) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM apps`); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	for _, app := range apps {
		if err = execInsertApp(ctx, tx, app); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (c *sqliteGalleryCache) ListApps(ctx context.Context) ([]models.AppRecord, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+appColumns+` FROM apps ORDER BY upload_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	apps := make([]models.AppRecord, 0)
	for rows.Next() {
		app, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return apps, nil
}

func (c *sqliteGalleryCache) SaveApp(ctx context.Context, app models.AppRecord) error {
	return execInsertApp(ctx, c.db, app)
}

func (c *sqliteGalleryCache) DeleteApp(ctx context.Context, id string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM apps WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if _, err := c.db.ExecContext(ctx, `DELETE FROM app_flags WHERE app_id = ?`, id); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// ToggleFlag flips the flag for appID and reports its new state.
func (c *sqliteGalleryCache) ToggleFlag(ctx context.Context, appID string, flag models.GalleryFlag) (bool, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM app_flags WHERE app_id = ? AND flag = ?`, appID, string(flag))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		return false, nil
	}

	if _, err = c.db.ExecContext(ctx, `INSERT INTO app_flags (app_id, flag) VALUES (?, ?)`, appID, string(flag)); err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return true, nil
}

func (c *sqliteGalleryCache) FlaggedIDs(ctx context.Context, flag models.GalleryFlag) (map[string]bool, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT app_id FROM app_flags WHERE flag = ?`, string(flag))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		ids[id] = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return ids, nil
}

// SaveSnapshot persists apps as the single last-known-good gallery state used
// for rollback after a failed server delete.
func (c *sqliteGalleryCache) SaveSnapshot(ctx context.Context, apps []models.AppRecord) error {
	payload, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if _, err = c.db.ExecContext(ctx, `INSERT OR REPLACE INTO snapshots (id, payload) VALUES (1, ?)`, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (c *sqliteGalleryCache) LoadSnapshot(ctx context.Context) ([]models.AppRecord, error) {
	var payload []byte
	err := c.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	apps := make([]models.AppRecord, 0)
	if err = json.Unmarshal(payload, &apps); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return apps, nil
}

func (c *sqliteGalleryCache) SaveSession(ctx context.Context, token string) error {
	_, err := c.db.ExecContext(ctx, `INSERT OR REPLACE INTO session (id, token) VALUES (1, ?)`, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (c *sqliteGalleryCache) Session(ctx context.Context) (string, error) {
	var token string
	err := c.db.QueryRowContext(ctx, `SELECT token FROM session WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return token, nil
}

func (c *sqliteGalleryCache) ClearSession(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// execer covers both *sql.DB and *sql.Tx for the shared insert path.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execInsertApp(ctx context.Context, db execer, app models.AppRecord) error {
	screenshots, tags, err := encodeLists(app.ScreenshotURLs, app.Tags)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, insertCachedApp,
		app.ID, app.Name, app.Developer, app.Description, app.IconURL, screenshots,
		app.Store, app.Status, app.Rating, app.Downloads, app.Views, app.Likes,
		app.UploadDate, tags, app.StoreURL, app.Version, app.Size, app.Category)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
