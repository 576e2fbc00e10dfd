package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

func (h *Handler) listContents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.ContentFilter{
		Type:          models.ContentType(r.URL.Query().Get("type")),
		PublishedOnly: r.URL.Query().Get("published") == "true",
	}

	contents, err := h.services.ContentService.ListContents(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing contents failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, contents, http.StatusOK)
}

func (h *Handler) createContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, image, err := h.decodeContentCreate(r)
	if err != nil {
		log.Err(err).Msg("Invalid content payload was passed")
		http.Error(w, "Invalid content payload was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ContentService.CreateContent(ctx, form, image)
	if err != nil {
		log.Err(err).Msg("content creation failed")
		writeError(w, err)
		return
	}

	log.Info().Str("id", created.ID).Str("type", string(created.Type)).Msg("content created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	update, image, err := h.decodeContentUpdate(r)
	if err != nil {
		log.Err(err).Msg("Invalid content payload was passed")
		http.Error(w, "Invalid content payload was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ContentService.UpdateContent(ctx, update, image)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("content update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := r.URL.Query().Get("id")
	if id == "" {
		log.Error().Msg("content id query param is missing")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.ContentService.DeleteContent(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("content deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Content deleted successfully"}, http.StatusOK)
}

// decodeContentCreate accepts either a plain JSON body with a pre-uploaded
// imageUrl or a multipart form carrying the image file inline.
func (h *Handler) decodeContentCreate(r *http.Request) (models.ContentForm, *store.Blob, error) {
	var form models.ContentForm

	if !isMultipart(r) {
		err := json.NewDecoder(r.Body).Decode(&form)
		return form, nil, err
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return form, nil, err
	}

	form.Title = r.FormValue("title")
	form.Content = r.FormValue("content")
	form.Author = r.FormValue("author")
	form.Type = models.ContentType(r.FormValue("type"))
	form.Tags = r.FormValue("tags")
	form.IsPublished = r.FormValue("isPublished") == "true"
	form.ImageURL = r.FormValue("imageUrl")

	image, err := formBlob(r, "file")
	if err != nil {
		return form, nil, err
	}

	return form, image, nil
}

func (h *Handler) decodeContentUpdate(r *http.Request) (models.ContentUpdate, *store.Blob, error) {
	var update models.ContentUpdate

	if !isMultipart(r) {
		err := json.NewDecoder(r.Body).Decode(&update)
		return update, nil, err
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return update, nil, err
	}

	update.ID = r.FormValue("id")
	if v, ok := formValue(r, "title"); ok {
		update.Title = &v
	}
	if v, ok := formValue(r, "content"); ok {
		update.Content = &v
	}
	if v, ok := formValue(r, "author"); ok {
		update.Author = &v
	}
	if v, ok := formValue(r, "tags"); ok {
		update.Tags = &v
	}
	if v, ok := formValue(r, "isPublished"); ok {
		published := v == "true"
		update.IsPublished = &published
	}
	if v, ok := formValue(r, "imageUrl"); ok {
		update.ImageURL = &v
	}

	image, err := formBlob(r, "file")
	if err != nil {
		return update, nil, err
	}

	return update, image, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formValue distinguishes an absent field from an empty one; partial updates
// only touch fields the form actually carried.
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
