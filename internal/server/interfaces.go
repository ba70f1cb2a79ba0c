package server

import "context"

// Server is a vault service transport.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails.
	// Cancellation shuts the server down gracefully and Run returns nil; a
	// listener failure is returned as is.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
