package http

import (
	"net/http"

	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.BuildInfo{Version: h.version}, http.StatusOK)
}
