// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrExists, err)
	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrLimit, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrRejected):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}
