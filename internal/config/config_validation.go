// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// normalize brings the merged config into canonical form. Origins are
// compared by exact string match at request time, so they are trimmed and
// stripped of a trailing slash here, once.
func (cfg *StructuredConfig) normalize() {
	cfg.Storage.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.DB.Driver))
	if cfg.Storage.DB.Driver == "pgx" || cfg.Storage.DB.Driver == "postgresql" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.DB.Driver == "sqlite3" {
		cfg.Storage.DB.Driver = DriverSQLite
	}

	cfg.Server.AllowedOrigins = NormalizeOrigins(cfg.Server.AllowedOrigins)
}

// NormalizeOrigins trims whitespace and a trailing "/" from every origin,
// drops empty entries and duplicates, and keeps the original order.
func NormalizeOrigins(origins []string) []string {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" || slices.Contains(normalized, origin) {
			continue
		}
		normalized = append(normalized, origin)
	}

	return normalized
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AdminUsername == "" || (cfg.App.AdminPassword == "" && cfg.App.AdminPasswordHash == "") {
		return fmt.Errorf("%w: admin username and password (or password hash) are required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: max open connections must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.GRPCAddress != "" && cfg.Workers.HealthInterval <= 0 {
		return fmt.Errorf("%w: health interval must be positive when gRPC is enabled", ErrInvalidWorkersConfigs)
	}

	return nil
}
