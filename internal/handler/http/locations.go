package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/service"
)

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	catalog, err := h.services.Locations.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing location catalog failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) importLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("reading catalog payload failed")
		http.Error(w, "cannot read request body", http.StatusBadRequest)
		return
	}

	count, err := h.services.Locations.ImportJSON(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoLocationsFound):
			log.Err(err).Msg("rejected location catalog payload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error during catalog import")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}
