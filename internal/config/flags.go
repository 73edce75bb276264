package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-remote-url base URL of the remote content API
//	-sync-token bearer credential for the remote content API
//	-sync-owner remote repository owner
//	-sync-repo remote repository name
//	-sync-branch remote branch
//	-sync-file remote document file path
//	-locations location catalog JSON file imported at startup
//	-sync-interval background sync interval (e.g., "5m"; 0 disables)
//	-request-timeout inbound request timeout (e.g., "30s")
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}

	flag.StringVar(&cfg.Server.HTTPAddress, "a", "", "Net address host:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local SQLite database path")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cfg.Remote.APIBaseURL, "remote-url", "", "Remote content API base URL")
	flag.StringVar(&cfg.Sync.Token, "sync-token", "", "Remote content API bearer token")
	flag.StringVar(&cfg.Sync.Owner, "sync-owner", "", "Remote repository owner")
	flag.StringVar(&cfg.Sync.Repo, "sync-repo", "", "Remote repository name")
	flag.StringVar(&cfg.Sync.Branch, "sync-branch", "", "Remote branch")
	flag.StringVar(&cfg.Sync.FilePath, "sync-file", "", "Remote document file path")
	flag.StringVar(&cfg.Storage.LocationsFile, "locations", "", "Location catalog JSON file")
	flag.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")

	flag.Parse()

	return cfg
}
