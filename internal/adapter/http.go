package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the password to
// POST /api/admin/login and stores the returned session token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, password string) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Password: password}).
		SetResult(&result).
		Post("/api/admin/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

// ListApps implements [ServerAdapter] over GET /api/apps.
func (h *httpServerAdapter) ListApps(ctx context.Context) ([]models.AppRecord, error) {
	var records []models.AppRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/api/apps")
	if err != nil {
		return nil, fmt.Errorf("list apps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateApp implements [ServerAdapter]. The record travels as a JSON "app"
// form field next to the icon and screenshot file parts.
func (h *httpServerAdapter) CreateApp(ctx context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("encode app record: %w", err)
	}

	var created models.AppRecord

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetMultipartFormData(map[string]string{"app": string(payload)}).
		SetResult(&created)
	attachMedia(req, icon, screenshots)

	resp, err := req.Post("/api/apps")
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("create app request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppRecord{}, err
	}

	return created, nil
}

// UpdateApp implements [ServerAdapter] over PUT /api/apps.
func (h *httpServerAdapter) UpdateApp(ctx context.Context, id string, update models.AppUpdate, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("encode app update: %w", err)
	}

	var updated models.AppRecord

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetMultipartFormData(map[string]string{"id": id, "app": string(payload)}).
		SetResult(&updated)
	attachMedia(req, icon, screenshots)

	resp, err := req.Put("/api/apps")
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("update app request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppRecord{}, err
	}

	return updated, nil
}

// DeleteApp implements [ServerAdapter] over DELETE /api/delete-app.
func (h *httpServerAdapter) DeleteApp(ctx context.Context, request models.DeleteAppRequest) (models.DeleteAppResult, error) {
	var result models.DeleteAppResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Delete("/api/delete-app")
	if err != nil {
		return models.DeleteAppResult{}, fmt.Errorf("delete app request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteAppResult{}, err
	}

	return result, nil
}

// UploadFile implements [ServerAdapter] over POST /api/upload.
func (h *httpServerAdapter) UploadFile(ctx context.Context, blob store.Blob, prefix string) (models.UploadResult, error) {
	var result models.UploadResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetFileReader("file", blob.Filename, bytes.NewReader(blob.Data)).
		SetMultipartFormData(map[string]string{"prefix": prefix}).
		SetResult(&result).
		Post("/api/upload")
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	return result, nil
}

// DeleteFile implements [ServerAdapter] over DELETE /api/delete-file.
func (h *httpServerAdapter) DeleteFile(ctx context.Context, fileURL string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteFileRequest{URL: fileURL}).
		Delete("/api/delete-file")
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}

	return mapHTTPError(resp)
}

func attachMedia(req *resty.Request, icon *store.Blob, screenshots []store.Blob) {
	if icon != nil {
		req.SetFileReader("icon", icon.Filename, bytes.NewReader(icon.Data))
	}
	for i, shot := range screenshots {
		name := shot.Filename
		if name == "" {
			name = "screenshot-" + strconv.Itoa(i)
		}
		req.SetFileReader("screenshots", name, bytes.NewReader(shot.Data))
	}
}
