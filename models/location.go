package models

// Location is one record of the location catalog: a known place with
// coordinates and presentation attributes. The catalog is read-only from the
// sync core's perspective; Coordinate Enrichment consumes it to backfill
// missing coordinates on plan entries that reference a location by id.
type Location struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	ImageURL     string  `json:"imageUrl"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Icon         string  `json:"icon"`
	Source       string  `json:"source"`
}
