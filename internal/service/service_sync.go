// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/merge"
	"github.com/MKhiriev/go-note-keeper/internal/quota"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// syncService stores each account's tree as one encrypted blob in the notes
// namespace. Every read-merge-write cycle on a blob runs under that blob's
// lock, so concurrent uploads to one account are applied one after another.
type syncService struct {
	blobs  store.BlobStorage
	cipher crypto.BlobCipher
	guard  QuotaGuard
	locks  *keyedMutex
	now    func() time.Time

	logger *logger.Logger
}

func NewSyncService(blobs store.BlobStorage, cipher crypto.BlobCipher, guard QuotaGuard, logger *logger.Logger) SyncService {
	return &syncService{
		blobs:  blobs,
		cipher: cipher,
		guard:  guard,
		locks:  newKeyedMutex(),
		now:    time.Now,
		logger: logger,
	}
}

func (s *syncService) Read(ctx context.Context, id, key string) (models.EntityMap, error) {
	notes, err := s.open(ctx, id, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.guard.Record(ctx, quota.EventReadUnknownFile)
		}
		return nil, err
	}

	s.guard.Record(ctx, quota.EventRead)
	return notes, nil
}

func (s *syncService) UploadAndMerge(ctx context.Context, id, key string, body models.EntityMap) (models.EntityMap, error) {
	unlock := s.locks.Lock(string(models.NamespaceNotes) + "/" + id)
	defer unlock()

	if body == nil {
		body = models.EntityMap{}
	}

	var full, delta models.EntityMap

	stored, err := s.open(ctx, id, key)
	switch {
	case errors.Is(err, ErrNotFound):
		if err := s.allow(ctx, quota.ActionCreate); err != nil {
			return nil, err
		}
		full, delta = body, body

	case err != nil:
		return nil, err

	default:
		if err := s.allow(ctx, quota.ActionUpdate); err != nil {
			return nil, err
		}
		full, delta = merge.Merge(body, stored, s.now())
	}

	blob, err := s.cipher.EncryptJSON(full, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting tree: %w", err)
	}
	log := logger.FromContext(ctx).WithBlob(string(models.NamespaceNotes), id)
	if err := s.blobs.Write(ctx, models.NamespaceNotes, id, blob); err != nil {
		log.Err(err).
			Str("func", "syncService.UploadAndMerge").
			Msg("failed to store merged tree")
		return nil, fmt.Errorf("error storing tree: %w", err)
	}

	log.Debug().
		Int("uploaded", len(body)).
		Int("stored", len(full)).
		Int("returned", len(delta)).
		Msg("tree merged")

	return delta, nil
}

// open reads and decrypts the tree stored under id. A wrong key is counted
// and reported as ErrInvalidKey; the blob is never modified here.
func (s *syncService) open(ctx context.Context, id, key string) (models.EntityMap, error) {
	blob, err := s.blobs.Read(ctx, models.NamespaceNotes, id)
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading tree: %w", err)
	}

	plain, err := s.cipher.Decrypt(blob, key)
	if err != nil || !json.Valid(plain) {
		s.guard.Record(ctx, quota.EventInvalidKey)
		return nil, ErrInvalidKey
	}

	return decodeTree(plain), nil
}

func (s *syncService) allow(ctx context.Context, action quota.Action) error {
	err := s.guard.Allow(ctx, action)
	if errors.Is(err, quota.ErrLimit) {
		return ErrLimit
	}
	if err != nil {
		return fmt.Errorf("error checking quota: %w", err)
	}
	return nil
}

// decodeTree decodes a stored tree. Anything other than a JSON object, such
// as the "[]" older servers wrote for an empty tree, is an empty tree.
func decodeTree(plain []byte) models.EntityMap {
	var notes models.EntityMap
	if err := json.Unmarshal(plain, &notes); err != nil || notes == nil {
		return models.EntityMap{}
	}
	return notes
}
