package http

import (
	"encoding/json"
	"net/http"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request.Password)
	if err != nil {
		log.Err(err).Msg("admin login rejected")
		writeError(w, err)
		return
	}

	log.Info().Msg("admin logged in")
	utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}
