package service

import (
	"context"

	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

// GalleryService owns the app records and the media flows tied to them.
type GalleryService interface {
	ListApps(ctx context.Context) ([]models.AppRecord, error)
	GetApp(ctx context.Context, id string) (models.AppRecord, error)
	CreateApp(ctx context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error)
	UpdateApp(ctx context.Context, id string, update models.AppUpdate, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error)
	DeleteApp(ctx context.Context, request models.DeleteAppRequest) (models.DeleteAppResult, error)

	UploadFile(ctx context.Context, blob store.Blob, prefix string) (models.UploadResult, error)
	UploadContentImage(ctx context.Context, blob store.Blob) (models.ImageUploadResult, error)
	DeleteFile(ctx context.Context, url string) error
}

// ContentService owns the app-story and news records.
type ContentService interface {
	ListContents(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)
	CreateContent(ctx context.Context, form models.ContentForm, image *store.Blob) (models.ContentItem, error)
	UpdateContent(ctx context.Context, update models.ContentUpdate, image *store.Blob) (models.ContentItem, error)
	DeleteContent(ctx context.Context, id string) error
}

// AuthService verifies the admin credential and manages session tokens.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	VerifyToken(ctx context.Context, token string) error
}

// MailService validates and forwards contact-form submissions.
type MailService interface {
	Send(ctx context.Context, message models.MailMessage) error
}
