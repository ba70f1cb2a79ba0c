// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault service request bodies before they reach
// the service layer: payload size and schema tag, ownership proofs, vault
// versions and auth key lengths. Failures wrap the sentinel errors of
// errors.go so callers can map them with [errors.Is].
package validators

import "context"

// Validator validates a request body. Naming fields restricts the check to
// them; with none, every field of the body's type is checked. Bodies of a
// type the validator does not know fail with [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
