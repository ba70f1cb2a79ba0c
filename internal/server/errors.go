// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHandlers is returned by NewServer when no HTTP handler is wired.
	ErrNoHandlers = errors.New("no HTTP handlers to serve")
	// ErrNoAddress is returned by NewServer for a blank listen address.
	ErrNoAddress = errors.New("no listen address configured")
)
