package http

import (
	"errors"
	"net/http"

	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	service.ErrValidationNameRequired:    http.StatusBadRequest,
	service.ErrValidationStoreInvalid:    http.StatusBadRequest,
	service.ErrValidationStatusInvalid:   http.StatusBadRequest,
	service.ErrValidationTypeInvalid:     http.StatusBadRequest,
	service.ErrValidationTitleRequired:   http.StatusBadRequest,
	service.ErrValidationIconRequired:    http.StatusBadRequest,
	service.ErrValidationContactRequired: http.StatusBadRequest,
	service.ErrValidationMessageRequired: http.StatusBadRequest,
	service.ErrValidationConsentRequired: http.StatusBadRequest,
	service.ErrValidationEmailInvalid:    http.StatusBadRequest,

	service.ErrMailNotConfigured: http.StatusInternalServerError,

	store.ErrRecordNotFound:        http.StatusNotFound,
	store.ErrDocumentNotSaved:      http.StatusInternalServerError,
	store.ErrBlobRequired:          http.StatusBadRequest,
	store.ErrUnsupportedMediaType:  http.StatusBadRequest,
	store.ErrBlobTooLarge:          http.StatusBadRequest,
	store.ErrInvalidFileURL:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and writes the `{error}` body the
// frontend expects.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
