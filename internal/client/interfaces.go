// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// View is the interactive front end driven by the sync client.
type View interface {
	service.Presenter

	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}
