package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/plan", func(r chi.Router) {
			r.Get("/", h.listPlan)
			r.Post("/", h.createEntry)
			r.Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)

			r.Get("/export", h.exportPlan)
			r.Post("/import", h.importPlan)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Post("/", h.syncNow)
			r.Get("/status", h.syncStatus)
			r.Get("/config", h.getSyncConfig)
			r.Put("/config", h.putSyncConfig)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", h.listLocations)
			r.Post("/import", h.importLocations)
		})

		r.Route("/crypto", func(r chi.Router) {
			r.Post("/encrypt", h.encryptValue)
			r.Post("/decrypt", h.decryptValue)
		})

		r.Get("/version", h.getVersion)
	})

	return router
}
