// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientSyncService struct {
	notes   *entity.Store
	adapter adapter.ServerAdapter
	state   store.LocalStateRepository
	timeout time.Duration

	primary sync.Mutex
	shared  *keyedMutex

	mu        sync.RWMutex
	creds     models.Credentials
	presenter Presenter
	lastSaved models.EntityMap

	logger *logger.Logger
}

// NewClientSyncService creates the sync client of notes. timeout bounds
// every round trip; zero leaves them bounded by ctx only.
func NewClientSyncService(notes *entity.Store, serverAdapter adapter.ServerAdapter, state store.LocalStateRepository,
	timeout time.Duration, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		notes:     notes,
		adapter:   serverAdapter,
		state:     state,
		timeout:   timeout,
		shared:    newKeyedMutex(),
		presenter: nopPresenter{},
		logger:    logger,
	}
}

func (s *clientSyncService) LoadCredentials(ctx context.Context, code string) (models.Credentials, error) {
	if code != "" {
		creds, err := models.ParseCredentials(code)
		if err != nil {
			return models.Credentials{}, fmt.Errorf("sync code: %w", err)
		}
		if err = s.storeCredentials(ctx, creds); err != nil {
			return models.Credentials{}, err
		}
		return creds, nil
	}

	id, _, err := s.state.GetSetting(ctx, store.SettingSyncID)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("error loading sync id: %w", err)
	}
	key, _, err := s.state.GetSetting(ctx, store.SettingSyncKey)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("error loading sync key: %w", err)
	}

	creds := models.Credentials{ID: id, Key: key}
	if !creds.Valid() {
		if creds, err = utils.GenerateCredentials(); err != nil {
			return models.Credentials{}, fmt.Errorf("error generating sync credentials: %w", err)
		}
		s.logger.Info().Msg("generated new sync credentials")
		if err = s.storeCredentials(ctx, creds); err != nil {
			return models.Credentials{}, err
		}
	}

	s.setCredentials(creds)
	return creds, nil
}

func (s *clientSyncService) storeCredentials(ctx context.Context, creds models.Credentials) error {
	if err := s.state.SetSetting(ctx, store.SettingSyncID, creds.ID); err != nil {
		return fmt.Errorf("error saving sync id: %w", err)
	}
	if err := s.state.SetSetting(ctx, store.SettingSyncKey, creds.Key); err != nil {
		return fmt.Errorf("error saving sync key: %w", err)
	}
	s.setCredentials(creds)
	return nil
}

func (s *clientSyncService) setCredentials(creds models.Credentials) {
	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()
}

func (s *clientSyncService) Credentials() models.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

func (s *clientSyncService) SetPresenter(p Presenter) {
	if p == nil {
		p = nopPresenter{}
	}
	s.mu.Lock()
	s.presenter = p
	s.mu.Unlock()
}

func (s *clientSyncService) view() Presenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presenter
}

func (s *clientSyncService) SyncPrimary(ctx context.Context) error {
	if !s.primary.TryLock() {
		s.logger.Debug().Msg("primary sync still in flight, tick skipped")
		return nil
	}
	defer s.primary.Unlock()

	creds := s.Credentials()
	if !creds.Valid() {
		return models.ErrInvalidCredentials
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	delta, err := s.adapter.UploadAndMerge(ctx, creds, s.notes.Snapshot())
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Msg("primary sync failed")
		return err
	}

	view := s.view()
	if res := s.notes.Merge(delta, view.SelectedID()); res.Changed {
		view.Rerender(res.SelectedChanged)
	}
	return nil
}

func (s *clientSyncService) SyncShared(ctx context.Context) error {
	snapshot := s.notes.Snapshot()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, id := range snapshot.IDs() {
		e := snapshot[id]
		if !e.Shared || s.notes.IsDeleted(id) {
			continue
		}
		creds := models.Credentials{ID: e.SharedID, Key: e.SharedKey}
		if !creds.Valid() {
			continue
		}

		unlock, ok := s.shared.TryLock(id)
		if !ok {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer unlock()

			if err := s.syncSharedNote(ctx, id, creds); err != nil {
				s.logger.Err(err).Str("note", id).Msg("shared note sync failed")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (s *clientSyncService) syncSharedNote(ctx context.Context, id string, creds models.Credentials) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	delta, err := s.adapter.UploadAndMerge(ctx, creds, s.notes.Subtree(id))
	if err != nil {
		return mapAdapterError(err)
	}

	view := s.view()
	if res := s.notes.MergeContentOnly(delta, view.SelectedID()); res.Changed {
		view.Rerender(res.SelectedChanged)
	}
	return nil
}

func (s *clientSyncService) Save(ctx context.Context) error {
	snapshot := s.notes.Snapshot()

	s.mu.RLock()
	unchanged := s.lastSaved != nil && equalTrees(s.lastSaved, snapshot)
	s.mu.RUnlock()
	if unchanged {
		return nil
	}

	if err := s.state.SaveEntities(ctx, snapshot); err != nil {
		s.logger.Err(err).Msg("saving notes failed")
		return fmt.Errorf("error saving notes: %w", err)
	}

	s.mu.Lock()
	s.lastSaved = snapshot
	s.mu.Unlock()
	return nil
}

func (s *clientSyncService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func equalTrees(a, b models.EntityMap) bool {
	if len(a) != len(b) {
		return false
	}
	for id, e := range a {
		o, ok := b[id]
		if !ok || !e.Equal(o) {
			return false
		}
	}
	return true
}

type nopPresenter struct{}

func (nopPresenter) SelectedID() string { return "" }
func (nopPresenter) Rerender(bool)      {}
