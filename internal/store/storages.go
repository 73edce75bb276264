package store

import (
	"context"
	"fmt"

	"github.com/nirco-cloud/tripsync/internal/config"
	"github.com/nirco-cloud/tripsync/internal/logger"
)

// Storages aggregates every local repository behind one constructor so the
// composition root wires a single dependency.
type Storages struct {
	Plan      PlanRepository
	Locations LocationRepository
	Settings  SettingsRepository
}

// NewStorages opens the local SQLite database, applies migrations, and
// constructs all repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.DaemonStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}

	return &Storages{
		Plan:      NewPlanRepository(db, log),
		Locations: NewLocationRepository(db, log),
		Settings:  NewSettingsRepository(db, log),
	}, nil
}
