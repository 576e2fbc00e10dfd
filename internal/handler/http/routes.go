package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/apps", h.listApps)
		r.Get("/api/content", h.listContents)
		r.Post("/api/send-mail", h.sendMail)
		r.Post("/api/admin/login", h.adminLogin)
		r.Get("/api/version/", h.getBuildInfo)
	})

	// routes that mutate state require an admin token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/apps", h.createApp)
		r.Put("/api/apps", h.updateApp)

		r.Post("/api/content", h.createContent)
		r.Put("/api/content", h.updateContent)
		r.Delete("/api/content", h.deleteContent)
		r.Post("/api/content/upload-image", h.uploadContentImage)

		r.Post("/api/upload", h.uploadFile)
		r.Delete("/api/delete-file", h.deleteFile)
		r.Delete("/api/delete-app", h.deleteApp)
	})

	// uploaded media is served straight off disk under the public prefix
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	return router
}
