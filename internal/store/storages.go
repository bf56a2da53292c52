// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages is the server's storage layer: encrypted blobs and the daily
// counters behind quotas.
type Storages struct {
	Blobs    BlobStorage
	Counters CounterStorage

	closers []io.Closer
}

// NewStorages builds the backend selected by cfg.Backend:
//   - "file": blobs and counters under cfg.Files.Dir;
//   - "postgres": blobs and counters in the database at cfg.DB.DSN, migrated
//     on start;
//   - "s3": blobs in the bucket, counters under cfg.Files.Dir when set and
//     in memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendFile:
		blobs, err := NewFileBlobStorage(cfg.Files.Dir)
		if err != nil {
			return nil, err
		}
		counters, err := NewFileCounterStorage(cfg.Files.Dir)
		if err != nil {
			return nil, err
		}
		return &Storages{Blobs: blobs, Counters: counters}, nil

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &Storages{
			Blobs:    NewPostgresBlobStorage(db),
			Counters: NewPostgresCounterStorage(db),
			closers:  []io.Closer{db},
		}, nil

	case config.BackendS3:
		blobs, err := NewS3BlobStorage(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}

		counters := NewMemoryCounterStorage()
		if cfg.Files.Dir != "" {
			if counters, err = NewFileCounterStorage(cfg.Files.Dir); err != nil {
				return nil, err
			}
		}
		return &Storages{Blobs: blobs, Counters: counters}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// Close releases database connections held by the storages.
func (s *Storages) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
