// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/store"
	"github.com/nirco-cloud/tripsync/models"
)

// LocationService manages the read-mostly location catalog that coordinate
// enrichment draws from.
type LocationService interface {
	// ImportJSON parses a catalog payload and upserts its records, returning
	// how many were imported.
	ImportJSON(ctx context.Context, data []byte) (int, error)

	// ImportFile reads and imports a catalog file from disk.
	ImportFile(ctx context.Context, path string) (int, error)

	// List returns every catalog record.
	List(ctx context.Context) ([]models.Location, error)
}

type locationService struct {
	locations store.LocationRepository
	logger    *logger.Logger
}

// NewLocationService wires the catalog service.
func NewLocationService(storage *store.Storages, log *logger.Logger) LocationService {
	return &locationService{locations: storage.Locations, logger: log}
}

// locationRecord is the lenient catalog wire shape: coordinates may arrive
// under lat/lng or the latitude/longitude aliases used by older exports.
type locationRecord struct {
	models.Location
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r locationRecord) toLocation() models.Location {
	loc := r.Location
	if loc.Lat == 0 && r.Latitude != nil {
		loc.Lat = *r.Latitude
	}
	if loc.Lng == 0 && r.Longitude != nil {
		loc.Lng = *r.Longitude
	}
	return loc
}

func (l *locationService) ImportJSON(ctx context.Context, data []byte) (int, error) {
	records, err := extractLocationRecords(data)
	if err != nil {
		return 0, err
	}

	valid := make([]models.Location, 0, len(records))
	for _, record := range records {
		loc := record.toLocation()
		if loc.ID == "" || loc.Name == "" {
			continue
		}
		valid = append(valid, loc)
	}

	if len(valid) == 0 {
		return 0, ErrNoLocationsFound
	}

	if err = l.locations.SaveAll(ctx, valid); err != nil {
		return 0, fmt.Errorf("save location catalog: %w", err)
	}

	l.logger.Info().
		Str("func", "locationService.ImportJSON").
		Int("records", len(valid)).
		Msg("location catalog imported")

	return len(valid), nil
}

func (l *locationService) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read location catalog file: %w", err)
	}
	return l.ImportJSON(ctx, data)
}

func (l *locationService) List(ctx context.Context) ([]models.Location, error) {
	catalog, err := l.locations.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read location catalog: %w", err)
	}
	return catalog, nil
}

func extractLocationRecords(data []byte) ([]locationRecord, error) {
	var bare []locationRecord
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var envelope struct {
		Locations []locationRecord `json:"locations"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoLocationsFound, err)
	}
	if envelope.Locations == nil {
		return nil, ErrNoLocationsFound
	}

	return envelope.Locations, nil
}
