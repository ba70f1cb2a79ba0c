// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoServices is returned by NewHandlers when there is nothing to route
// requests to.
var ErrNoServices = errors.New("handlers need services")
