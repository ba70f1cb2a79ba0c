// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the password vault command line client.
//
// Every command runs against a [service.PasswordManager] built from the
// client configuration. One-shot commands unlock the manager when they need
// to; the shell command keeps it unlocked between commands until the
// auto-lock worker locks it after a period of inactivity.
package client
