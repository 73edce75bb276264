// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nirco-cloud/tripsync/internal/adapter"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/service"
	"github.com/nirco-cloud/tripsync/models"
)

// syncResponse is the trigger endpoint's payload: the post-cycle status
// projection and the resulting live entry set.
type syncResponse struct {
	Status  models.SyncStatus  `json:"status"`
	Entries []models.PlanEntry `json:"entries"`
}

func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entries, err := h.services.Sync.SyncNow(ctx)
	if err != nil {
		status := h.services.Sync.Status()
		switch {
		case errors.Is(err, service.ErrOffline), errors.Is(err, service.ErrNoToken):
			log.Err(err).Msg("sync precondition failed")
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		case errors.Is(err, adapter.ErrConflict):
			log.Err(err).Msg("sync rejected by concurrent writer")
			writeJSON(w, http.StatusConflict, status)
			return
		case errors.Is(err, service.ErrSyncInProgress):
			log.Err(err).Msg("sync already running")
			writeJSON(w, http.StatusTooManyRequests, status)
			return
		default:
			log.Err(err).Msg("sync cycle failed")
			writeJSON(w, http.StatusBadGateway, status)
			return
		}
	}

	writeJSON(w, http.StatusOK, syncResponse{
		Status:  h.services.Sync.Status(),
		Entries: entries,
	})
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.Sync.Status())
}

func (h *Handler) getSyncConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cfg, err := h.services.Sync.GetConfig(ctx)
	if err != nil {
		log.Err(err).Msg("reading sync config failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// never echo the credential back to the UI
	cfg.Token = ""

	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) putSyncConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var cfg models.SyncConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Sync.SetConfig(ctx, cfg); err != nil {
		log.Err(err).Msg("saving sync config failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
