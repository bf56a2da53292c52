// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the note server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) speaking the single-endpoint action protocol.
//
// Error values defined in errors.go are mapped from HTTP status codes and the
// "error" field of response bodies by mapHTTPError, so callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrForbidden] for a
// wrong key).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the note
// server. Every call is addressed and unlocked by an id/key pair.
type ServerAdapter interface {
	// Read fetches the full tree stored under creds.
	Read(ctx context.Context, creds models.Credentials) (models.EntityMap, error)

	// UploadAndMerge sends the caller's tree and returns the entities the
	// server holds newer versions of.
	UploadAndMerge(ctx context.Context, creds models.Credentials, body models.EntityMap) (models.EntityMap, error)

	// CreateSharedNote stores a write-once snapshot under creds.
	CreateSharedNote(ctx context.Context, creds models.Credentials, content models.EntityMap) error

	// GetSharedNote fetches a snapshot stored by CreateSharedNote.
	GetSharedNote(ctx context.Context, creds models.Credentials) (models.EntityMap, error)

	// GetVersion returns the server build info.
	GetVersion(ctx context.Context) (models.AppBuildInfo, error)
}
