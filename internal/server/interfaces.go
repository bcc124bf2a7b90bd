package server

import "context"

// Server runs the configured transports.
type Server interface {
	// Run serves until ctx is cancelled or a transport fails, then shuts
	// everything down. A clean shutdown returns nil.
	Run(ctx context.Context) error

	// Shutdown stops the transports and closes the resources handed to
	// NewServer. It is safe to call more than once.
	Shutdown()
}
