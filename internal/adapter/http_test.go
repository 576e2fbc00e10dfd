package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_BadBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: ""}, logger.Nop())
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hunter2", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenResponse{Token: "session-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "session-token", token)
	assert.Equal(t, "session-token", a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"wrong password"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "wrong")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestListApps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/apps", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.AppRecord{{ID: "1", Name: "Weather Now"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	records, err := a.ListApps(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Weather Now", records[0].Name)
}

func TestCreateApp_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var record models.AppRecord
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("app")), &record))
		assert.Equal(t, "Weather Now", record.Name)

		_, _, err := r.FormFile("icon")
		require.NoError(t, err)
		assert.Len(t, r.MultipartForm.File["screenshots"], 2)

		record.ID = "77"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(record)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	icon := &store.Blob{Filename: "icon.png", ContentType: "image/png", Data: []byte{1}}
	shots := []store.Blob{
		{Filename: "s1.png", ContentType: "image/png", Data: []byte{2}},
		{Filename: "s2.png", ContentType: "image/png", Data: []byte{3}},
	}

	created, err := a.CreateApp(context.Background(), models.AppRecord{Name: "Weather Now"}, icon, shots)
	require.NoError(t, err)
	assert.Equal(t, "77", created.ID)
}

func TestDeleteApp_ReturnsStructuredResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/delete-app", r.URL.Path)

		var req models.DeleteAppRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "42", req.ID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DeleteAppResult{
			Success:      true,
			DeletedFiles: []string{"/uploads/icon.png"},
			Errors:       []string{},
			Message:      "App deleted successfully",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	result, err := a.DeleteApp(context.Background(), models.DeleteAppRequest{ID: "42", IconURL: "/uploads/icon.png"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"/uploads/icon.png"}, result.DeletedFiles)
}

func TestDeleteFile_MapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid file url"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteFile(context.Background(), "https://elsewhere.example/x.png")

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "banner", r.FormValue("prefix"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "photo.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UploadResult{Success: true, URL: "/uploads/banner_1.png"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	result, err := a.UploadFile(context.Background(),
		store.Blob{Filename: "photo.png", ContentType: "image/png", Data: []byte{1}}, "banner")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/uploads/banner_1.png", result.URL)
}

func TestMediaProber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/uploads/ok.png" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	prober, err := NewMediaProber(
		config.ClientAdapter{BaseURL: srv.URL},
		config.ClientProbe{Timeout: 2 * time.Second},
		logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, prober.Probe(ctx, "/uploads/ok.png"))
	assert.False(t, prober.Probe(ctx, "/uploads/gone.png"))
	assert.False(t, prober.Probe(ctx, ""))
}
