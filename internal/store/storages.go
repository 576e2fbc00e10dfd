package store

import (
	"context"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/migrations"
)

// Storages bundles every persistence backend the server uses.
type Storages struct {
	Apps     AppRepository
	Contents ContentRepository
	Files    FileStore
}

// NewStorages wires the record repositories and the file store from the
// storage configuration. When a database DSN is present the record stores run
// on PostgreSQL and the schema is migrated on startup; otherwise they run on
// JSON documents under the data directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	files := NewDiskFileStore(cfg.Files.UploadDir, cfg.Files.MaxUploadBytes, log)

	if cfg.DB.DSN == "" {
		return &Storages{
			Apps:     NewAppDocumentRepository(cfg.Data.Dir, log),
			Contents: NewContentDocumentRepository(cfg.Data.Dir, log),
			Files:    files,
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = migrations.Apply(db.DB); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying database migrations")
		return nil, err
	}

	return &Storages{
		Apps:     NewAppSQLRepository(db, log),
		Contents: NewContentSQLRepository(db, log),
		Files:    files,
	}, nil
}
