// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errInvalidJSON is returned when the request body is not a JSON object.
	errInvalidJSON = errors.New("request body is not valid JSON")

	// errIntegrityCheck is returned when the HashSHA256 header does not
	// match the body.
	errIntegrityCheck = errors.New("integrity check failed")
)
