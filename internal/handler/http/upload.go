package http

import (
	"encoding/json"
	"net/http"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		log.Err(err).Msg("Invalid multipart form was passed")
		http.Error(w, "Invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	blob, err := formBlob(r, "file")
	if err != nil {
		log.Err(err).Msg("reading file part failed")
		http.Error(w, "reading file part failed", http.StatusBadRequest)
		return
	}
	if blob == nil {
		log.Err(ErrMissingFile).Send()
		http.Error(w, ErrMissingFile.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.GalleryService.UploadFile(ctx, *blob, r.FormValue("prefix"))
	if err != nil {
		log.Err(err).Str("filename", blob.Filename).Msg("file upload failed")
		writeError(w, err)
		return
	}

	log.Info().Str("url", result.URL).Int64("size", result.Size).Msg("file uploaded")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) uploadContentImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		log.Err(err).Msg("Invalid multipart form was passed")
		http.Error(w, "Invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	blob, err := formBlob(r, "file")
	if err != nil {
		log.Err(err).Msg("reading file part failed")
		http.Error(w, "reading file part failed", http.StatusBadRequest)
		return
	}
	if blob == nil {
		log.Err(ErrMissingFile).Send()
		http.Error(w, ErrMissingFile.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.GalleryService.UploadContentImage(ctx, *blob)
	if err != nil {
		log.Err(err).Str("filename", blob.Filename).Msg("content image upload failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteFileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.GalleryService.DeleteFile(ctx, request.URL); err != nil {
		log.Err(err).Str("url", request.URL).Msg("file deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "File deleted successfully"}, http.StatusOK)
}
