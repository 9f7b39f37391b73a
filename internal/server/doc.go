// Package server runs the HTTP API and the optional gRPC health endpoint.
//
// Both listeners are bound in [NewServer], so an occupied port fails start-up
// instead of a background goroutine. [Server.RunServer] blocks until SIGINT,
// SIGTERM or SIGQUIT, then stops the background workers and drains the
// transports within a fixed deadline.
package server
