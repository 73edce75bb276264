package store

import (
	"context"
	"fmt"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/models"
)

type locationRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocationRepository constructs the SQLite-backed LocationRepository.
func NewLocationRepository(db *DB, log *logger.Logger) LocationRepository {
	return &locationRepository{DB: db, logger: log}
}

func (l *locationRepository) SaveAll(ctx context.Context, records []models.Location) error {
	tx, err := l.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin location import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		_, err = tx.ExecContext(ctx, saveLocation,
			record.ID,
			record.Name,
			record.Lat,
			record.Lng,
			record.Category,
			record.Description,
			record.Address,
			record.ImageURL,
			record.ThumbnailURL,
			record.Icon,
			record.Source,
		)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "locationRepository.SaveAll").
				Str("id", record.ID).
				Msg("failed to upsert location record")
			return fmt.Errorf("failed to save location (id=%s): %w", record.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit location import: %w", err)
	}

	return nil
}

func (l *locationRepository) ReadAll(ctx context.Context) ([]models.Location, error) {
	rows, err := l.QueryContext(ctx, getAllLocations)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "locationRepository.ReadAll").
			Msg("failed to query locations")
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var records []models.Location
	for rows.Next() {
		var record models.Location
		scanErr := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Lat,
			&record.Lng,
			&record.Category,
			&record.Description,
			&record.Address,
			&record.ImageURL,
			&record.ThumbnailURL,
			&record.Icon,
			&record.Source,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed reading location rows: %w", rowsErr)
	}

	return records, nil
}
