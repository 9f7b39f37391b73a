// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/animal-catalog/internal/logger"
)

// HealthCheckWorker calls a [HealthChecker] once at start and then on every tick of
// interval. Check failures are logged on state changes only and never stop
// the worker.
type HealthCheckWorker struct {
	checker  HealthChecker
	interval time.Duration

	logger *logger.Logger
}

func NewHealthCheckWorker(checker HealthChecker, interval time.Duration, logger *logger.Logger) *HealthCheckWorker {
	return &HealthCheckWorker{
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

func (w *HealthCheckWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	healthy := w.check(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("health check worker stopped")
			return nil
		case <-ticker.C:
			healthy = w.check(ctx, healthy)
		}
	}
}

// check runs a single check bounded by interval. previous is nil before the
// first check.
func (w *HealthCheckWorker) check(ctx context.Context, previous *bool) *bool {
	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.checker.CheckHealth(checkCtx)
	healthy := err == nil

	if previous == nil || *previous != healthy {
		if healthy {
			w.logger.Info().Msg("storage is healthy")
		} else {
			w.logger.Err(err).Msg("storage health check failed")
		}
	}

	return &healthy
}
