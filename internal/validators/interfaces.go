// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming action requests before they reach the
// services. Only the shape of a request is checked here. Whether a key
// actually opens a blob is decided by the cipher.
package validators

import "context"

// Validator checks a value. Passing field names limits the check to those
// fields; with none, every field that matters for the value is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
