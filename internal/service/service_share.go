package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/quota"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type shareService struct {
	blobs  store.BlobStorage
	cipher crypto.BlobCipher
	guard  QuotaGuard

	logger *logger.Logger
}

func NewShareService(blobs store.BlobStorage, cipher crypto.BlobCipher, guard QuotaGuard, logger *logger.Logger) ShareService {
	return &shareService{
		blobs:  blobs,
		cipher: cipher,
		guard:  guard,
		logger: logger,
	}
}

func (s *shareService) CreateShare(ctx context.Context, id, key string, content json.RawMessage) error {
	err := s.guard.Allow(ctx, quota.ActionCreateSharedNote)
	if errors.Is(err, quota.ErrLimit) {
		return ErrLimit
	}
	if err != nil {
		return fmt.Errorf("error checking quota: %w", err)
	}

	if len(content) == 0 {
		content = json.RawMessage("{}")
	}

	blob, err := s.cipher.Encrypt(content, key)
	if err != nil {
		return fmt.Errorf("error encrypting shared note: %w", err)
	}

	err = s.blobs.Create(ctx, models.NamespaceShared, id, blob)
	if errors.Is(err, store.ErrBlobExists) {
		return ErrExists
	}
	if err != nil {
		logger.FromContext(ctx).WithBlob(string(models.NamespaceShared), id).Err(err).
			Str("func", "shareService.CreateShare").
			Msg("failed to store shared note")
		return fmt.Errorf("error storing shared note: %w", err)
	}

	return nil
}

func (s *shareService) ResolveShare(ctx context.Context, id, key string) (json.RawMessage, error) {
	blob, err := s.blobs.Read(ctx, models.NamespaceShared, id)
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading shared note: %w", err)
	}

	plain, err := s.cipher.Decrypt(blob, key)
	if err != nil || !json.Valid(plain) {
		s.guard.Record(ctx, quota.EventInvalidKey)
		return nil, ErrInvalidKey
	}

	return json.RawMessage(plain), nil
}
