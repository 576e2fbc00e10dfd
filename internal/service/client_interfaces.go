package service

import (
	"context"

	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

// GallerySynchronizer keeps the client's local gallery state aligned with the
// server: cold-start seeding, warm-start media validation, optimistic
// mutations with rollback, and the local-only featured/event marks.
type GallerySynchronizer interface {
	// Start brings the local gallery to a validated state. An empty cache is
	// seeded with the built-in sample apps; a warm cache gets its media URLs
	// probed and broken ones replaced with the placeholder.
	Start(ctx context.Context) ([]models.AppRecord, error)

	// Apps returns the current local gallery, newest upload first.
	Apps(ctx context.Context) ([]models.AppRecord, error)

	// Refresh pulls the gallery from the server and replaces the cache.
	Refresh(ctx context.Context) ([]models.AppRecord, error)

	// CreateApp pushes a new record with media to the server and caches the
	// result.
	CreateApp(ctx context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error)

	// UpdateApp pushes a partial update to the server and caches the result.
	UpdateApp(ctx context.Context, id string, update models.AppUpdate, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error)

	// DeleteApp removes the app optimistically: local state first, then the
	// server flow; a server failure restores the pre-delete snapshot.
	DeleteApp(ctx context.Context, id string) error

	// ToggleFeatured flips the local featured mark and reports the new state.
	ToggleFeatured(ctx context.Context, id string) (bool, error)

	// ToggleEvent flips the local event mark and reports the new state.
	ToggleEvent(ctx context.Context, id string) (bool, error)

	// Marks returns the current featured and event id sets.
	Marks(ctx context.Context) (featured, events map[string]bool, err error)
}

// ClientAuthService manages the admin session on the client side.
type ClientAuthService interface {
	// Login exchanges the password for a server session token and persists
	// it in the cache.
	Login(ctx context.Context, password string) error

	// RestoreSession loads a previously saved token into the adapter.
	// Returns store.ErrLocalSessionNotFound when none is cached.
	RestoreSession(ctx context.Context) error

	// Logout drops the cached session.
	Logout(ctx context.Context) error
}
