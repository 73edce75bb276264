// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"github.com/nirco-cloud/tripsync/internal/adapter"
	"github.com/nirco-cloud/tripsync/internal/config"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/store"
)

// Services aggregates the application services behind one constructor so the
// composition root wires a single dependency.
type Services struct {
	Plan      PlanService
	Sync      SyncService
	Locations LocationService
	Status    *StatusTracker
}

// NewServices wires every service on top of the shared storages and the
// remote document adapter.
func NewServices(
	cfg *config.DaemonConfig,
	storage *store.Storages,
	remote adapter.DocumentClient,
	connectivity adapter.ConnectivityChecker,
	log *logger.Logger,
) *Services {
	status := NewStatusTracker(cfg.App.StatusResetAfter)

	return &Services{
		Plan:      NewPlanService(storage, log),
		Sync:      NewSyncService(storage, remote, connectivity, status, cfg.SyncSeed, log),
		Locations: NewLocationService(storage, log),
		Status:    status,
	}
}
