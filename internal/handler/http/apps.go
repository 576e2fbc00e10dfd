package http

import (
	"encoding/json"
	"net/http"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

func (h *Handler) listApps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	apps, err := h.services.GalleryService.ListApps(ctx)
	if err != nil {
		log.Err(err).Msg("listing apps failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, apps, http.StatusOK)
}

// createApp handles the multipart create-with-media gateway: the record
// arrives as JSON in the "app" field, the icon in the "icon" part, and the
// screenshots as repeated "screenshots" parts.
func (h *Handler) createApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		log.Err(err).Msg("Invalid multipart form was passed")
		http.Error(w, "Invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	var record models.AppRecord
	if err := json.Unmarshal([]byte(r.FormValue("app")), &record); err != nil {
		log.Err(err).Msg("Invalid app JSON was passed")
		http.Error(w, "Invalid app JSON was passed", http.StatusBadRequest)
		return
	}

	icon, err := formBlob(r, "icon")
	if err != nil {
		log.Err(err).Msg("reading icon part failed")
		http.Error(w, "reading icon part failed", http.StatusBadRequest)
		return
	}
	screenshots, err := formBlobs(r, "screenshots")
	if err != nil {
		log.Err(err).Msg("reading screenshot parts failed")
		http.Error(w, "reading screenshot parts failed", http.StatusBadRequest)
		return
	}

	created, err := h.services.GalleryService.CreateApp(ctx, record, icon, screenshots)
	if err != nil {
		log.Err(err).Msg("app creation failed")
		writeError(w, err)
		return
	}

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("app created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		log.Err(err).Msg("Invalid multipart form was passed")
		http.Error(w, "Invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")
	if id == "" {
		log.Error().Msg("app id form field is missing")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	var update models.AppUpdate
	if err := json.Unmarshal([]byte(r.FormValue("app")), &update); err != nil {
		log.Err(err).Msg("Invalid app JSON was passed")
		http.Error(w, "Invalid app JSON was passed", http.StatusBadRequest)
		return
	}

	icon, err := formBlob(r, "icon")
	if err != nil {
		log.Err(err).Msg("reading icon part failed")
		http.Error(w, "reading icon part failed", http.StatusBadRequest)
		return
	}
	screenshots, err := formBlobs(r, "screenshots")
	if err != nil {
		log.Err(err).Msg("reading screenshot parts failed")
		http.Error(w, "reading screenshot parts failed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.GalleryService.UpdateApp(ctx, id, update, icon, screenshots)
	if err != nil {
		log.Err(err).Str("id", id).Msg("app update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteAppRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.GalleryService.DeleteApp(ctx, request)
	if err != nil {
		log.Err(err).Str("id", request.ID).Msg("app deletion failed")
		writeError(w, err)
		return
	}

	log.Info().Str("id", request.ID).Int("deleted_files", len(result.DeletedFiles)).Msg("app deleted")
	utils.WriteJSON(w, result, http.StatusOK)
}
