// Package adapter provides the transport layer between the admin client and
// the showcase server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) plus a media-URL prober backed by
// bounded HEAD requests.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the showcase
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Call it after a successful Login or when
	// restoring a cached session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges the admin password for a session token. On success the
	// token is stored via SetToken and returned.
	Login(ctx context.Context, password string) (string, error)

	// ListApps fetches the full gallery from the server.
	ListApps(ctx context.Context) ([]models.AppRecord, error)

	// CreateApp sends a multipart create: record fields plus the icon and
	// ordered screenshots.
	CreateApp(ctx context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error)

	// UpdateApp sends a multipart partial update. Nil media keeps the stored
	// files.
	UpdateApp(ctx context.Context, id string, update models.AppUpdate, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error)

	// DeleteApp runs the server-side delete-with-media flow and returns its
	// structured outcome.
	DeleteApp(ctx context.Context, request models.DeleteAppRequest) (models.DeleteAppResult, error)

	// UploadFile pushes one blob through the generic upload route.
	UploadFile(ctx context.Context, blob store.Blob, prefix string) (models.UploadResult, error)

	// DeleteFile removes one previously uploaded file by URL.
	DeleteFile(ctx context.Context, url string) error
}

// MediaProber checks whether a media URL still resolves. Probes are bounded
// by the configured per-request timeout.
type MediaProber interface {
	Probe(ctx context.Context, url string) bool
}
