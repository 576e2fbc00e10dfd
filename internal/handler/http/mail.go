package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/utils"
	"github.com/gongmyung/app-showcase/models"
)

func (h *Handler) sendMail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	message, err := h.decodeMailMessage(r)
	if err != nil {
		log.Err(err).Msg("Invalid mail payload was passed")
		http.Error(w, "Invalid mail payload was passed", http.StatusBadRequest)
		return
	}
	message.ClientIP = clientIP(r)

	if err = h.services.MailService.Send(ctx, message); err != nil {
		log.Err(err).Str("type", message.Type).Msg("mail submission failed")
		writeError(w, err)
		return
	}

	log.Info().Str("type", message.Type).Str("email", message.Email).Msg("mail submission forwarded")
	utils.WriteJSON(w, models.MailResponse{Success: true, Message: "Mail sent successfully"}, http.StatusOK)
}

// decodeMailMessage accepts a plain JSON body or a multipart form with an
// optional file attachment.
func (h *Handler) decodeMailMessage(r *http.Request) (models.MailMessage, error) {
	var message models.MailMessage

	if !isMultipart(r) {
		err := json.NewDecoder(r.Body).Decode(&message)
		return message, err
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return message, err
	}

	message.Name = r.FormValue("name")
	message.Email = r.FormValue("email")
	message.Subject = r.FormValue("subject")
	message.Message = r.FormValue("message")
	message.Type = r.FormValue("type")
	message.AgreeToMarketing = r.FormValue("agreeToMarketing") == "true"

	blob, err := formBlob(r, "file")
	if err != nil {
		return message, err
	}
	if blob != nil {
		message.Attachment = &models.MailAttachment{
			Filename: blob.Filename,
			Content:  blob.Data,
		}
	}

	return message, nil
}

// clientIP prefers the first X-Forwarded-For hop so the mail footer shows the
// caller, not the reverse proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
