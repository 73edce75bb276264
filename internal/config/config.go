// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for tripsync. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the local
	// HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Remote holds settings for the remote content API transport.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync seeds the remote document coordinates and credential. Values
	// persisted in the local store take precedence once set.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StatusResetAfter is the display window after which a finished sync
	// status (success or error) reverts to idle (e.g. "4s").
	// Env: APP_STATUS_RESET_AFTER
	StatusResetAfter time.Duration `env:"STATUS_RESET_AFTER"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// LocationsFile is an optional path to a JSON file with location
	// catalog records imported at startup.
	// Env: STORAGE_LOCATIONS_FILE
	LocationsFile string `env:"LOCATIONS_FILE"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database path (e.g. "tripsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the local HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8090").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Remote holds settings for the remote content API transport.
type Remote struct {
	// APIBaseURL is the base URL of the versioned content store
	// (e.g. "https://api.github.com").
	// Env: REMOTE_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout is the timeout for outbound pull/push requests.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync seeds the remote document coordinates and bearer credential used for
// the very first sync, before the user has persisted a configuration locally.
type Sync struct {
	// Token is the bearer credential for the remote content API.
	// Env: SYNC_TOKEN
	Token string `env:"TOKEN"`

	// Owner and Repo locate the repository holding the shared document.
	// Env: SYNC_OWNER, SYNC_REPO
	Owner string `env:"OWNER"`
	Repo  string `env:"REPO"`

	// Branch is the ref the document lives on.
	// Env: SYNC_BRANCH
	Branch string `env:"BRANCH"`

	// FilePath is the document path inside the repository.
	// Env: SYNC_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval defines how often the periodic sync job runs. Zero
	// disables the job; sync then happens only on explicit trigger.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
