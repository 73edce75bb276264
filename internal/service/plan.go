// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"context"
	"fmt"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/store"
	"github.com/nirco-cloud/tripsync/internal/utils"
	"github.com/nirco-cloud/tripsync/models"
)

// PlanService is the local CRUD surface of the itinerary. All writes are
// local-only; propagation to other replicas happens exclusively through the
// sync cycle.
type PlanService interface {
	// Create validates and stores a new entry, generating an id when absent
	// and deriving a display name from the type-specific payload when none
	// was given.
	Create(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error)

	// Update overwrites an existing entry by id, refreshing its
	// last-write timestamp.
	Update(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error)

	// Delete converts the entry into a tombstone. Absent ids are a no-op.
	Delete(ctx context.Context, id string) error

	// List returns the live entry set, coordinate-enriched from the
	// location catalog.
	List(ctx context.Context) ([]models.PlanEntry, error)

	// Export serializes the live entry set into a portable plan file.
	Export(ctx context.Context) ([]byte, error)

	// Import parses a plan file payload and stores its entries, returning
	// how many were imported.
	Import(ctx context.Context, data []byte) (int, error)
}

type planService struct {
	plan      store.PlanRepository
	locations store.LocationRepository
	logger    *logger.Logger
}

// NewPlanService wires the itinerary CRUD service.
func NewPlanService(storage *store.Storages, log *logger.Logger) PlanService {
	return &planService{
		plan:      storage.Plan,
		locations: storage.Locations,
		logger:    log,
	}
}

func (p *planService) Create(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	entry = models.Normalize(entry)

	if !models.KnownType(entry.Type) {
		entry.Type = models.TypeLocation
	}
	if entry.Day < 1 {
		return models.PlanEntry{}, fmt.Errorf("%w: day must be positive", ErrInvalidEntry)
	}

	if entry.Name == "" {
		if spec := models.EntryTypes[entry.Type]; spec.DeriveName != nil {
			entry.Name = spec.DeriveName(entry.Meta)
		}
	}
	if entry.Name == "" {
		return models.PlanEntry{}, fmt.Errorf("%w: name is required", ErrInvalidEntry)
	}

	if entry.ID == "" {
		entry.ID = utils.GenerateUUID()
	}

	saved, err := p.plan.Save(ctx, entry)
	if err != nil {
		return models.PlanEntry{}, fmt.Errorf("save plan entry: %w", err)
	}

	p.logger.Debug().
		Str("func", "planService.Create").
		Str("id", saved.ID).
		Str("type", saved.Type).
		Msg("plan entry created")

	return saved, nil
}

func (p *planService) Update(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	if entry.ID == "" {
		return models.PlanEntry{}, fmt.Errorf("%w: id is required", ErrInvalidEntry)
	}
	if entry.Day < 1 {
		return models.PlanEntry{}, fmt.Errorf("%w: day must be positive", ErrInvalidEntry)
	}

	entry = models.Normalize(entry)

	updated, err := p.plan.Update(ctx, entry)
	if err != nil {
		return models.PlanEntry{}, fmt.Errorf("update plan entry: %w", err)
	}

	return updated, nil
}

func (p *planService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidEntry)
	}

	if err := p.plan.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete plan entry: %w", err)
	}

	p.logger.Debug().
		Str("func", "planService.Delete").
		Str("id", id).
		Msg("plan entry tombstoned")

	return nil
}

func (p *planService) List(ctx context.Context) ([]models.PlanEntry, error) {
	entries, err := p.plan.ReadAllLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("read plan entries: %w", err)
	}

	catalog, err := p.locations.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read location catalog: %w", err)
	}

	return EnrichCoordinates(entries, catalog), nil
}
