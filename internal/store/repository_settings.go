package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/models"
)

// kv keys used by the settings repository.
const (
	keySyncConfig   = "sync_config"
	keyLastSyncTime = "last_sync_time"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs the SQLite-backed SettingsRepository.
func NewSettingsRepository(db *DB, log *logger.Logger) SettingsRepository {
	return &settingsRepository{DB: db, logger: log}
}

func (s *settingsRepository) GetSyncConfig(ctx context.Context) (models.SyncConfig, error) {
	raw, err := s.get(ctx, keySyncConfig)
	if err != nil {
		return models.SyncConfig{}, err
	}

	var cfg models.SyncConfig
	if err = json.Unmarshal([]byte(raw), &cfg); err != nil {
		return models.SyncConfig{}, fmt.Errorf("failed to decode sync config: %w", err)
	}

	return cfg, nil
}

func (s *settingsRepository) SetSyncConfig(ctx context.Context, cfg models.SyncConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode sync config: %w", err)
	}

	return s.set(ctx, keySyncConfig, string(raw))
}

func (s *settingsRepository) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	raw, err := s.get(ctx, keyLastSyncTime)
	if err != nil {
		return time.Time{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last sync time: %w", err)
	}

	return ts, nil
}

func (s *settingsRepository) SetLastSyncTime(ctx context.Context, ts time.Time) error {
	return s.set(ctx, keyLastSyncTime, ts.Format(time.RFC3339Nano))
}

func (s *settingsRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.QueryRowContext(ctx, getKVValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.get").
			Str("key", key).
			Msg("failed to read kv record")
		return "", fmt.Errorf("failed to read kv record (key=%s): %w", key, err)
	}

	return value, nil
}

func (s *settingsRepository) set(ctx context.Context, key, value string) error {
	if _, err := s.ExecContext(ctx, setKVValue, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.set").
			Str("key", key).
			Msg("failed to write kv record")
		return fmt.Errorf("failed to write kv record (key=%s): %w", key, err)
	}

	return nil
}
