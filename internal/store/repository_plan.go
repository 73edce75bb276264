// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/models"
)

// planColumns is the canonical column order used by every plan query.
// "position" is the entry ordering key; "order" is a reserved word in SQL.
var planColumns = []string{
	"id", "day", "position", "type", "name",
	"lat", "lng", "location_id", "note", "owner", "meta",
	"created_at", "updated_at", "deleted_at",
}

type planRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType

	// now is the clock used for CreatedAt/UpdatedAt stamping. Replaced in
	// tests to make timestamps deterministic.
	now func() time.Time
}

// NewPlanRepository constructs the SQLite-backed PlanRepository.
func NewPlanRepository(db *DB, log *logger.Logger) PlanRepository {
	return &planRepository{
		DB:      db,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
	}
}

func (r *planRepository) Save(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	now := r.now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if err := r.upsert(ctx, r.DB.DB, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "planRepository.Save").
			Str("id", entry.ID).
			Msg("failed to upsert plan entry")
		return models.PlanEntry{}, fmt.Errorf("failed to save plan entry (id=%s): %w", entry.ID, err)
	}

	return entry, nil
}

func (r *planRepository) Update(ctx context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	return r.Save(ctx, entry)
}

func (r *planRepository) ReadAllLive(ctx context.Context) ([]models.PlanEntry, error) {
	return r.readAll(ctx, false)
}

func (r *planRepository) ReadAllIncludingTombstones(ctx context.Context) ([]models.PlanEntry, error) {
	return r.readAll(ctx, true)
}

func (r *planRepository) SoftDelete(ctx context.Context, id string) error {
	now := r.now().UTC()

	query, args, err := r.builder.
		Update("plan_entries").
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build soft delete query: %w", err)
	}

	// Absent id affects zero rows, which is the documented no-op.
	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "planRepository.SoftDelete").
			Str("id", id).
			Msg("failed to soft delete plan entry")
		return fmt.Errorf("failed to soft delete plan entry (id=%s): %w", id, err)
	}

	return nil
}

func (r *planRepository) ReplaceAll(ctx context.Context, entries []models.PlanEntry) error {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin replace-all transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM plan_entries"); err != nil {
		return fmt.Errorf("failed to clear plan entries: %w", err)
	}

	for _, entry := range entries {
		if err = r.upsert(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to write plan entry (id=%s): %w", entry.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace-all transaction: %w", err)
	}

	return nil
}

// execer covers both *sql.DB and *sql.Tx so upsert can run inside and
// outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *planRepository) upsert(ctx context.Context, db execer, entry models.PlanEntry) error {
	metaValue, err := marshalMeta(entry.Meta)
	if err != nil {
		return err
	}

	query, args, err := r.builder.
		Insert("plan_entries").
		Columns(planColumns...).
		Values(
			entry.ID, entry.Day, entry.Order, entry.Type, entry.Name,
			entry.Lat, entry.Lng, entry.LocationID, entry.Note, entry.Owner, metaValue,
			entry.CreatedAt, entry.UpdatedAt, entry.DeletedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			day = excluded.day,
			position = excluded.position,
			type = excluded.type,
			name = excluded.name,
			lat = excluded.lat,
			lng = excluded.lng,
			location_id = excluded.location_id,
			note = excluded.note,
			owner = excluded.owner,
			meta = excluded.meta,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	_, err = db.ExecContext(ctx, query, args...)
	return err
}

func (r *planRepository) readAll(ctx context.Context, includeTombstones bool) ([]models.PlanEntry, error) {
	q := r.builder.
		Select(planColumns...).
		From("plan_entries").
		OrderBy("day", "position")
	if !includeTombstones {
		q = q.Where(sq.Eq{"deleted_at": nil})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "planRepository.readAll").
			Msg("failed to query plan entries")
		return nil, fmt.Errorf("failed to query plan entries: %w", err)
	}
	defer rows.Close()

	var entries []models.PlanEntry
	for rows.Next() {
		entry, scanErr := scanPlanEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan plan entry row: %w", scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed reading plan entry rows: %w", rowsErr)
	}

	return entries, nil
}

func scanPlanEntry(rows *sql.Rows) (models.PlanEntry, error) {
	var (
		entry            models.PlanEntry
		lat, lng         sql.NullFloat64
		locationID, note sql.NullString
		metaRaw          sql.NullString
		deletedAt        sql.NullTime
	)

	err := rows.Scan(
		&entry.ID, &entry.Day, &entry.Order, &entry.Type, &entry.Name,
		&lat, &lng, &locationID, &note, &entry.Owner, &metaRaw,
		&entry.CreatedAt, &entry.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return models.PlanEntry{}, err
	}

	if lat.Valid {
		entry.Lat = &lat.Float64
	}
	if lng.Valid {
		entry.Lng = &lng.Float64
	}
	if locationID.Valid {
		entry.LocationID = &locationID.String
	}
	if note.Valid {
		entry.Note = &note.String
	}
	if deletedAt.Valid {
		ts := deletedAt.Time
		entry.DeletedAt = &ts
	}
	if metaRaw.Valid && metaRaw.String != "" {
		if err = json.Unmarshal([]byte(metaRaw.String), &entry.Meta); err != nil {
			return models.PlanEntry{}, fmt.Errorf("failed to decode meta payload: %w", err)
		}
	}

	return entry, nil
}

// marshalMeta serializes the opaque meta payload for storage. A nil map is
// stored as NULL so a round trip preserves "no payload".
func marshalMeta(meta models.Meta) (any, error) {
	if meta == nil {
		return nil, nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meta payload: %w", err)
	}
	return string(raw), nil
}
