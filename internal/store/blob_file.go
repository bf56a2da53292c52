// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const tempPrefix = ".tmp-"

// fileBlobStorage keeps every blob in its own file under
// <dir>/<namespace>/<id>. Writes go through a temporary file in the same
// directory, so readers never see a partially written blob. The file's
// modification time doubles as its access time and is refreshed on reads.
type fileBlobStorage struct {
	dir string
	now func() time.Time
}

// NewFileBlobStorage creates the namespace directories under dir and returns
// a [BlobStorage] backed by them.
func NewFileBlobStorage(dir string) (BlobStorage, error) {
	for _, ns := range models.Namespaces {
		if err := os.MkdirAll(filepath.Join(dir, string(ns)), 0o755); err != nil {
			return nil, fmt.Errorf("error creating blob directory: %w", err)
		}
	}

	return &fileBlobStorage{dir: dir, now: time.Now}, nil
}

func (f *fileBlobStorage) path(ns models.Namespace, id string) (string, error) {
	if err := checkKey(ns, id); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, string(ns), id), nil
}

func (f *fileBlobStorage) Read(ctx context.Context, ns models.Namespace, id string) ([]byte, error) {
	p, err := f.path(ns, id)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading blob: %w", err)
	}

	now := f.now()
	if err := os.Chtimes(p, now, now); err != nil {
		// the blob was read; a stale access time only makes it an earlier
		// candidate for the sweep
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "fileBlobStorage.Read").
			Msg("failed to refresh blob access time")
	}

	return blob, nil
}

func (f *fileBlobStorage) Write(_ context.Context, ns models.Namespace, id string, blob []byte) error {
	p, err := f.path(ns, id)
	if err != nil {
		return err
	}

	tmp, err := f.writeTemp(ns, id, blob)
	if err != nil {
		return err
	}

	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error replacing blob: %w", err)
	}

	return nil
}

func (f *fileBlobStorage) Create(_ context.Context, ns models.Namespace, id string, blob []byte) error {
	p, err := f.path(ns, id)
	if err != nil {
		return err
	}

	tmp, err := f.writeTemp(ns, id, blob)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	// link fails when the target exists, which makes create exclusive
	// without exposing a half-written file
	if err := os.Link(tmp, p); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrBlobExists
		}
		return fmt.Errorf("error creating blob: %w", err)
	}

	return nil
}

// DeleteIfIdle moves the blob aside before it checks the access time, so a
// Write that lands in between either replaces the path again or is the file
// that got moved, in which case it is linked back.
func (f *fileBlobStorage) DeleteIfIdle(_ context.Context, ns models.Namespace, id string, cutoff time.Time) (bool, error) {
	p, err := f.path(ns, id)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading blob info: %w", err)
	}
	if !info.ModTime().Before(cutoff) {
		return false, nil
	}

	aside := filepath.Join(f.dir, string(ns), tempPrefix+"gc-"+id)
	if err := os.Rename(p, aside); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("error moving blob aside: %w", err)
	}
	defer os.Remove(aside)

	info, err = os.Stat(aside)
	if err != nil {
		return false, fmt.Errorf("error reading blob info: %w", err)
	}
	if !info.ModTime().Before(cutoff) {
		// put the fresh blob back unless an even newer Write took the path
		if err := os.Link(aside, p); err != nil && !errors.Is(err, fs.ErrExist) {
			return false, fmt.Errorf("error restoring blob: %w", err)
		}
		return false, nil
	}

	return true, nil
}

func (f *fileBlobStorage) List(_ context.Context) ([]models.BlobInfo, error) {
	var infos []models.BlobInfo

	for _, ns := range models.Namespaces {
		entries, err := os.ReadDir(filepath.Join(f.dir, string(ns)))
		if err != nil {
			return nil, fmt.Errorf("error listing %s blobs: %w", ns, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), tempPrefix) {
				continue
			}

			info, err := entry.Info()
			if errors.Is(err, fs.ErrNotExist) {
				// deleted since ReadDir
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("error reading blob info: %w", err)
			}

			infos = append(infos, models.BlobInfo{
				Namespace:  ns,
				ID:         entry.Name(),
				AccessedAt: info.ModTime(),
			})
		}
	}

	return infos, nil
}

func (f *fileBlobStorage) writeTemp(ns models.Namespace, id string, blob []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Join(f.dir, string(ns)), tempPrefix+id+"-*")
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("error writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("error closing temp file: %w", err)
	}

	now := f.now()
	_ = os.Chtimes(tmp.Name(), now, now)

	return tmp.Name(), nil
}
