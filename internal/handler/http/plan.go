// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/service"
	"github.com/nirco-cloud/tripsync/models"
)

func (h *Handler) listPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entries, err := h.services.Plan.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing plan entries failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	entries = service.VisibleEntries(entries, unlockedOwners(r))

	writeJSON(w, http.StatusOK, entries)
}

// unlockedOwners parses the owners query parameter: a comma-separated list of
// private-owner tags the session has unlocked.
func unlockedOwners(r *http.Request) []string {
	raw := r.URL.Query().Get("owners")
	if raw == "" {
		return nil
	}

	owners := make([]string, 0)
	for _, owner := range strings.Split(raw, ",") {
		if owner = strings.TrimSpace(owner); owner != "" {
			owners = append(owners, owner)
		}
	}
	return owners
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var entry models.PlanEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Plan.Create(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntry):
			log.Err(err).Msg("invalid plan entry")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error during entry creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var entry models.PlanEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	entry.ID = chi.URLParam(r, "id")

	updated, err := h.services.Plan.Update(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntry):
			log.Err(err).Msg("invalid plan entry")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error during entry update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.Plan.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntry):
			log.Err(err).Msg("invalid delete request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error during entry deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := h.services.Plan.Export(ctx)
	if err != nil {
		log.Err(err).Msg("plan export failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-plan.json"`)
	w.Write(data)
}

func (h *Handler) importPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("reading import payload failed")
		http.Error(w, "cannot read request body", http.StatusBadRequest)
		return
	}

	count, err := h.services.Plan.Import(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlanFile), errors.Is(err, service.ErrNoEntriesFound):
			log.Err(err).Msg("rejected plan file")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error during plan import")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}
