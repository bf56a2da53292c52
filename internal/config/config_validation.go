// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.BlobFormat {
	case "legacy", "v2":
	default:
		return fmt.Errorf("%w: unknown blob format %q", ErrInvalidAppConfigs, cfg.App.BlobFormat)
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.Files.Dir == "" {
			return fmt.Errorf("%w: file backend needs a directory", ErrInvalidStorageConfigs)
		}
	case BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres backend needs a DSN", ErrInvalidStorageConfigs)
		}
	case BackendS3:
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 backend needs a bucket", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Quota.CreateLimit <= 0 || cfg.Quota.UpdateLimit <= 0 || cfg.Quota.SharedNoteLimit <= 0 {
		return ErrInvalidQuotaConfigs
	}

	if cfg.GC.SampleEvery < 0 || cfg.GC.SampleSize < 0 || cfg.GC.MaxIdle < 0 {
		return ErrInvalidGCConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 || cfg.Workers.SaveInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SyncCode != "" {
		if _, err := models.ParseCredentials(cfg.App.SyncCode); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
