package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.version
	if version == "" {
		version = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
