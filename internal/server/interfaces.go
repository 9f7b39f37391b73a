package server

// Server defines the lifecycle contract of the process-level server.
//
// RunServer blocks until a termination signal arrives, then shuts every
// transport and background worker down. Shutdown may be called directly to
// stop the transports without a signal.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the transports and frees associated resources.
	Shutdown()
}
