// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and returns when it completes.
	Run(args []string) error
}

// Prompter reads answers from the user.
type Prompter interface {
	// Password reads a line without echoing it.
	Password(prompt string) (string, error)

	// Line reads a line of plain input.
	Line(prompt string) (string, error)
}

// Clipboard receives revealed or generated secrets.
type Clipboard interface {
	WriteAll(text string) error
}
