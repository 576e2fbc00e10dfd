package store

import (
	"context"

	"github.com/gongmyung/app-showcase/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// GalleryCache is the local gallery state kept by the admin client between
// runs. Apps mirror the server gallery; flags and the session token are
// client-side only and survive a full gallery replacement.
type GalleryCache interface {
	ReplaceApps(ctx context.Context, apps []models.AppRecord) error
	ListApps(ctx context.Context) ([]models.AppRecord, error)
	SaveApp(ctx context.Context, app models.AppRecord) error
	DeleteApp(ctx context.Context, id string) error

	ToggleFlag(ctx context.Context, appID string, flag models.GalleryFlag) (bool, error)
	FlaggedIDs(ctx context.Context, flag models.GalleryFlag) (map[string]bool, error)

	SaveSnapshot(ctx context.Context, apps []models.AppRecord) error
	LoadSnapshot(ctx context.Context) ([]models.AppRecord, error)

	SaveSession(ctx context.Context, token string) error
	Session(ctx context.Context) (string, error)
	ClearSession(ctx context.Context) error
}
