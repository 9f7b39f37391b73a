// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Driver names accepted in [DB.Driver].
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// defaultConfig returns the lowest-priority configuration layer. The demo
// identity and origins reproduce the behaviour the web front end expects.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "dev_secret_change_me",
			TokenIssuer:   "animal-catalog",
			TokenDuration: time.Hour,
			AdminID:       1,
			AdminUsername: "admin",
			AdminPassword: "admin123",
			LogLevel:      "debug",
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:          DriverMySQL,
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 30 * time.Minute,
				ConnectTimeout:  5 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:    ":3000",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"https://webserviceweb.onrender.com",
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			HealthInterval: 15 * time.Second,
		},
	}
}
