// Package server runs the vault service HTTP transport.
//
// It owns the listener: Run binds the configured address and serves until
// its context is cancelled, then shuts down gracefully within a bounded
// time. Signal handling is left to the binary.
package server
