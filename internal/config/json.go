package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-typed durations so a config file can write "4s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		StatusResetAfter Duration `json:"status_reset_after"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		LocationsFile string `json:"locations_file"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Remote struct {
		APIBaseURL     string   `json:"api_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		Token    string `json:"token"`
		Owner    string `json:"owner"`
		Repo     string `json:"repo"`
		Branch   string `json:"branch"`
		FilePath string `json:"file_path"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

// Duration wraps time.Duration so JSON config files can use human-readable
// strings like "30s" or "5m".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string ("30s") or a bare integer
// nanosecond count.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, parseErr := time.ParseDuration(asString)
		if parseErr != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, parseErr)
		}
		*d = Duration(parsed)
		return nil
	}

	var asInt int64
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(asInt)
	return nil
}

// parseJSON reads the JSON config file at path and maps it onto a
// *StructuredConfig so it can participate in the merge.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	jsonCfg := &StructuredJSONConfig{}
	if err = json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config file: %w", err)
	}

	cfg := &StructuredConfig{}
	cfg.App.StatusResetAfter = time.Duration(jsonCfg.App.StatusResetAfter)
	cfg.App.Version = jsonCfg.App.Version
	cfg.Storage.DB.DSN = jsonCfg.Storage.DB.DSN
	cfg.Storage.LocationsFile = jsonCfg.Storage.LocationsFile
	cfg.Server.HTTPAddress = jsonCfg.Server.HTTPAddress
	cfg.Server.RequestTimeout = time.Duration(jsonCfg.Server.RequestTimeout)
	cfg.Remote.APIBaseURL = jsonCfg.Remote.APIBaseURL
	cfg.Remote.RequestTimeout = time.Duration(jsonCfg.Remote.RequestTimeout)
	cfg.Sync.Token = jsonCfg.Sync.Token
	cfg.Sync.Owner = jsonCfg.Sync.Owner
	cfg.Sync.Repo = jsonCfg.Sync.Repo
	cfg.Sync.Branch = jsonCfg.Sync.Branch
	cfg.Sync.FilePath = jsonCfg.Sync.FilePath
	cfg.Workers.SyncInterval = time.Duration(jsonCfg.Workers.SyncInterval)

	return cfg, nil
}
