package service

import "github.com/nirco-cloud/tripsync/models"

// EnrichCoordinates backfills missing coordinates on entries that reference a
// location catalog record by id. Enrichment is presentation-side only: the
// returned copies are never written back to the store, and entries with their
// own coordinates are left untouched. Dangling references stay unenriched
// without error.
func EnrichCoordinates(entries []models.PlanEntry, catalog []models.Location) []models.PlanEntry {
	byID := make(map[string]models.Location, len(catalog))
	for _, loc := range catalog {
		byID[loc.ID] = loc
	}

	enriched := make([]models.PlanEntry, len(entries))
	for i, entry := range entries {
		if (entry.Lat == nil || entry.Lng == nil) && entry.LocationID != nil {
			if loc, ok := byID[*entry.LocationID]; ok {
				lat, lng := loc.Lat, loc.Lng
				entry.Lat = &lat
				entry.Lng = &lng
			}
		}
		enriched[i] = entry
	}

	return enriched
}
