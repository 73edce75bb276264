package config

import (
	"fmt"
	"time"

	"github.com/nirco-cloud/tripsync/models"
)

// DaemonApp holds application-level settings for the tripsyncd runtime.
type DaemonApp struct {
	// StatusResetAfter is the display window before a finished sync status
	// reverts to idle.
	StatusResetAfter time.Duration
	// Version is the application version string.
	Version string
}

// DaemonDB contains local database settings for the daemon.
type DaemonDB struct {
	// DSN is the SQLite database path.
	DSN string
}

// DaemonStorage groups local storage backend settings.
type DaemonStorage struct {
	// DB holds local database settings.
	DB DaemonDB
	// LocationsFile is the optional location catalog JSON file.
	LocationsFile string
}

// DaemonServer holds the local HTTP API settings.
type DaemonServer struct {
	// HTTPAddress is the listen address of the local API.
	HTTPAddress string
	// RequestTimeout is the inbound request timeout.
	RequestTimeout time.Duration
}

// DaemonRemote holds the remote content API transport settings.
type DaemonRemote struct {
	// APIBaseURL is the base URL of the remote content store.
	APIBaseURL string
	// RequestTimeout is the outbound request timeout.
	RequestTimeout time.Duration
}

// DaemonWorkers contains background sync job settings.
type DaemonWorkers struct {
	// SyncInterval defines how often the periodic sync job runs.
	// Zero disables the job.
	SyncInterval time.Duration
}

// DaemonConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type DaemonConfig struct {
	// App contains application-level settings.
	App DaemonApp
	// Storage contains local storage settings.
	Storage DaemonStorage
	// Server contains local HTTP API settings.
	Server DaemonServer
	// Remote contains remote transport settings.
	Remote DaemonRemote
	// SyncSeed is the initial remote document configuration, used until a
	// configuration has been persisted locally.
	SyncSeed models.SyncConfig
	// Workers contains background job settings.
	Workers DaemonWorkers
}

// GetDaemonConfig builds and validates the daemon config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the daemon runtime, applies defaults for everything left
// unset, and validates the resulting [DaemonConfig].
func GetDaemonConfig() (*DaemonConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	seed := models.DefaultSyncConfig()
	seed.Token = cfg.Sync.Token
	if cfg.Sync.Owner != "" {
		seed.Owner = cfg.Sync.Owner
	}
	if cfg.Sync.Repo != "" {
		seed.Repo = cfg.Sync.Repo
	}
	if cfg.Sync.Branch != "" {
		seed.Branch = cfg.Sync.Branch
	}
	if cfg.Sync.FilePath != "" {
		seed.FilePath = cfg.Sync.FilePath
	}

	daemonCfg := &DaemonConfig{
		App: DaemonApp{
			StatusResetAfter: cfg.App.StatusResetAfter,
			Version:          cfg.App.Version,
		},
		Storage: DaemonStorage{
			DB:            DaemonDB{DSN: cfg.Storage.DB.DSN},
			LocationsFile: cfg.Storage.LocationsFile,
		},
		Server: DaemonServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Remote: DaemonRemote{
			APIBaseURL:     cfg.Remote.APIBaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		SyncSeed: seed,
		Workers:  DaemonWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
	daemonCfg.applyDefaults()

	return daemonCfg, daemonCfg.validate()
}

func (cfg *DaemonConfig) applyDefaults() {
	if cfg.App.StatusResetAfter <= 0 {
		cfg.App.StatusResetAfter = 4 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "tripsync.db"
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "127.0.0.1:8090"
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Remote.APIBaseURL == "" {
		cfg.Remote.APIBaseURL = "https://api.github.com"
	}
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = 15 * time.Second
	}
}
