package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/models"
)

func TestListApps(t *testing.T) {
	gallery := &mockGalleryService{
		listAppsFn: func(_ context.Context) ([]models.AppRecord, error) {
			return []models.AppRecord{{ID: "2", Name: "Weather Now"}, {ID: "1", Name: "Run Club"}}, nil
		},
	}
	router := newTestRouter(t, &service.Services{GalleryService: gallery})

	req := httptest.NewRequest(http.MethodGet, "/api/apps", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var apps []models.AppRecord
	require.NoError(t, jsonDecode(rec, &apps))
	require.Len(t, apps, 2)
	assert.Equal(t, "Weather Now", apps[0].Name)
}

func TestCreateApp_MultipartDecoding(t *testing.T) {
	var gotRecord models.AppRecord
	var gotIcon *store.Blob
	var gotScreenshots []store.Blob
	gallery := &mockGalleryService{
		createAppFn: func(_ context.Context, record models.AppRecord, icon *store.Blob, screenshots []store.Blob) (models.AppRecord, error) {
			gotRecord = record
			gotIcon = icon
			gotScreenshots = screenshots
			record.ID = "100"
			return record, nil
		},
	}
	router := newTestRouter(t, &service.Services{GalleryService: gallery})

	record := models.AppRecord{Name: "Run Club", Store: models.GooglePlay, Status: models.StatusPublished}
	recordJSON, err := json.Marshal(record)
	require.NoError(t, err)

	body, contentType := multipartBody(t,
		map[string]string{"app": string(recordJSON)},
		[]filePart{
			{name: "icon", filename: "icon.png", content: []byte("icon-bytes")},
			{name: "screenshots", filename: "one.png", content: []byte("s1")},
			{name: "screenshots", filename: "two.png", content: []byte("s2")},
		},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/apps", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Run Club", gotRecord.Name)
	require.NotNil(t, gotIcon)
	assert.Equal(t, "icon.png", gotIcon.Filename)
	require.Len(t, gotScreenshots, 2)
	assert.Equal(t, "one.png", gotScreenshots[0].Filename)
	assert.Equal(t, "two.png", gotScreenshots[1].Filename)

	var created models.AppRecord
	require.NoError(t, jsonDecode(rec, &created))
	assert.Equal(t, "100", created.ID)
}

func TestCreateApp_RequiresToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{GalleryService: &mockGalleryService{}})

	body, contentType := multipartBody(t, map[string]string{"app": "{}"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/apps", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateApp_ValidationError(t *testing.T) {
	gallery := &mockGalleryService{
		createAppFn: func(_ context.Context, _ models.AppRecord, _ *store.Blob, _ []store.Blob) (models.AppRecord, error) {
			return models.AppRecord{}, service.ErrValidationIconRequired
		},
	}
	router := newTestRouter(t, &service.Services{GalleryService: gallery})

	body, contentType := multipartBody(t, map[string]string{"app": `{"name":"X"}`}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/apps", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response models.ErrorResponse
	require.NoError(t, jsonDecode(rec, &response))
	assert.Equal(t, service.ErrValidationIconRequired.Error(), response.Error)
}

func TestUpdateApp_MissingID(t *testing.T) {
	router := newTestRouter(t, &service.Services{GalleryService: &mockGalleryService{}})

	body, contentType := multipartBody(t, map[string]string{"app": "{}"}, nil)
	req := httptest.NewRequest(http.MethodPut, "/api/apps", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApp_NotFound(t *testing.T) {
	gallery := &mockGalleryService{
		updateAppFn: func(_ context.Context, _ string, _ models.AppUpdate, _ *store.Blob, _ []store.Blob) (models.AppRecord, error) {
			return models.AppRecord{}, store.ErrRecordNotFound
		},
	}
	router := newTestRouter(t, &service.Services{GalleryService: gallery})

	body, contentType := multipartBody(t, map[string]string{"id": "9", "app": `{"name":"X"}`}, nil)
	req := httptest.NewRequest(http.MethodPut, "/api/apps", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteApp_UnknownIDIsSuccess(t *testing.T) {
	const password = "gallery-admin"
	router := newLiveRouter(t, password)
	token := loginAdmin(t, router, password)

	// sample apps live only in the client cache; deleting them must still
	// answer success so the client keeps the local removal
	request := models.DeleteAppRequest{
		ID:      "1",
		IconURL: "https://images.unsplash.com/photo-1611224923853",
	}
	req := httptest.NewRequest(http.MethodDelete, "/api/delete-app", jsonBody(t, request))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.DeleteAppResult
	require.NoError(t, jsonDecode(rec, &result))
	assert.True(t, result.Success)
}

func TestDeleteApp_ReportsPartialFailures(t *testing.T) {
	gallery := &mockGalleryService{
		deleteAppFn: func(_ context.Context, request models.DeleteAppRequest) (models.DeleteAppResult, error) {
			return models.DeleteAppResult{
				Success:      true,
				DeletedFiles: []string{request.IconURL},
				Errors:       []string{request.ScreenshotURLs[0] + ": permission denied"},
				Message:      "App deleted, some files could not be removed",
			}, nil
		},
	}
	router := newTestRouter(t, &service.Services{GalleryService: gallery})

	request := models.DeleteAppRequest{
		ID:             "5",
		IconURL:        "/uploads/icon_1.png",
		ScreenshotURLs: []string{"/uploads/screenshot_1.png"},
	}
	req := httptest.NewRequest(http.MethodDelete, "/api/delete-app", jsonBody(t, request))
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.DeleteAppResult
	require.NoError(t, jsonDecode(rec, &result))
	assert.True(t, result.Success)
	assert.Equal(t, []string{"/uploads/icon_1.png"}, result.DeletedFiles)
	require.Len(t, result.Errors, 1)
}
