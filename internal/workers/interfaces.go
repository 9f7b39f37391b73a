// Package workers provides abstractions for managing and running
// background workers of the animal catalog server.
// It defines the Worker interface and a Workers aggregate that runs
// several workers side by side until their context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker hits an unrecoverable
// error. Returning nil after cancellation is the normal way to stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// HealthChecker reports whether a dependency is healthy and records the outcome.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
