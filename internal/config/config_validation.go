// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself carries no hard requirements: every field has
// a daemon-level default. Returns nil.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *DaemonConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !strings.HasPrefix(cfg.Remote.APIBaseURL, "http://") &&
		!strings.HasPrefix(cfg.Remote.APIBaseURL, "https://") {
		return ErrInvalidRemoteConfigs
	}

	return nil
}
