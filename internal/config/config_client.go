// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// GetClientConfig loads the configuration of the command-line client.
// The client parses its own sub-command flags, so only defaults,
// environment variables and the JSON file named by CONFIG are merged.
// Server-side validation is not applied.
func GetClientConfig() (*StructuredConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON()
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building client config: %w", b.err)
	}

	cfg, err := b.merge()
	if err != nil {
		return nil, err
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%w: address and positive timeout are required", ErrInvalidAdapterConfigs)
	}

	return cfg, nil
}
