// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testCreds   = models.Credentials{ID: testID, Key: testKey}
	sharedCreds = models.Credentials{ID: "sharedid12345678", Key: "sharedkey0123456789abcdefghijklm"}
)

// recordingPresenter запоминает все перерисовки.
type recordingPresenter struct {
	mu       sync.Mutex
	selected string
	renders  []bool
}

func (p *recordingPresenter) SelectedID() string { return p.selected }

func (p *recordingPresenter) Rerender(selectedChanged bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renders = append(p.renders, selectedChanged)
}

func (p *recordingPresenter) got() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.renders...)
}

func newTestNotes(notes models.EntityMap) *entity.Store {
	return entity.NewStore(notes, entity.WithClock(func() time.Time { return testNow }))
}

func newTestClientSync(t *testing.T, notes models.EntityMap, timeout time.Duration) (
	*clientSyncService, *mock.MockServerAdapter, *mock.MockLocalStateRepository, *recordingPresenter,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ad := mock.NewMockServerAdapter(ctrl)
	repo := mock.NewMockLocalStateRepository(ctrl)
	view := &recordingPresenter{}

	s := NewClientSyncService(newTestNotes(notes), ad, repo, timeout, logger.Nop()).(*clientSyncService)
	s.setCredentials(testCreds)
	s.SetPresenter(view)
	return s, ad, repo, view
}

func child(parent, text string, lastModified int64) models.Entity {
	e := note(text, lastModified)
	e.ParentID = parent
	return e
}

// ── LoadCredentials ──────────────────────────────────────────────────────────

func TestClientSyncService_LoadCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("code overrides stored pair", func(t *testing.T) {
		s, _, repo, _ := newTestClientSync(t, nil, 0)
		repo.EXPECT().SetSetting(ctx, store.SettingSyncID, sharedCreds.ID).Return(nil)
		repo.EXPECT().SetSetting(ctx, store.SettingSyncKey, sharedCreds.Key).Return(nil)

		got, err := s.LoadCredentials(ctx, sharedCreds.String())
		require.NoError(t, err)
		assert.Equal(t, sharedCreds, got)
		assert.Equal(t, sharedCreds, s.Credentials())
	})

	t.Run("invalid code", func(t *testing.T) {
		s, _, _, _ := newTestClientSync(t, nil, 0)
		_, err := s.LoadCredentials(ctx, "short#key")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("stored pair", func(t *testing.T) {
		s, _, repo, _ := newTestClientSync(t, nil, 0)
		repo.EXPECT().GetSetting(ctx, store.SettingSyncID).Return(sharedCreds.ID, true, nil)
		repo.EXPECT().GetSetting(ctx, store.SettingSyncKey).Return(sharedCreds.Key, true, nil)

		got, err := s.LoadCredentials(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, sharedCreds, got)
	})

	t.Run("generated when missing", func(t *testing.T) {
		s, _, repo, _ := newTestClientSync(t, nil, 0)
		repo.EXPECT().GetSetting(ctx, store.SettingSyncID).Return("", false, nil)
		repo.EXPECT().GetSetting(ctx, store.SettingSyncKey).Return("", false, nil)
		repo.EXPECT().SetSetting(ctx, store.SettingSyncID, gomock.Any()).Return(nil)
		repo.EXPECT().SetSetting(ctx, store.SettingSyncKey, gomock.Any()).Return(nil)

		got, err := s.LoadCredentials(ctx, "")
		require.NoError(t, err)
		assert.True(t, got.Valid())
		assert.Len(t, got.ID, 16)
		assert.Len(t, got.Key, 32)
	})

	t.Run("regenerated when too short", func(t *testing.T) {
		s, _, repo, _ := newTestClientSync(t, nil, 0)
		repo.EXPECT().GetSetting(ctx, store.SettingSyncID).Return("abc", true, nil)
		repo.EXPECT().GetSetting(ctx, store.SettingSyncKey).Return("def", true, nil)
		repo.EXPECT().SetSetting(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		got, err := s.LoadCredentials(ctx, "")
		require.NoError(t, err)
		assert.NotEqual(t, "abc", got.ID)
	})

	t.Run("repository error", func(t *testing.T) {
		s, _, repo, _ := newTestClientSync(t, nil, 0)
		dbErr := errors.New("db is locked")
		repo.EXPECT().GetSetting(ctx, store.SettingSyncID).Return("", false, dbErr)

		_, err := s.LoadCredentials(ctx, "")
		assert.ErrorIs(t, err, dbErr)
	})
}

// ── SyncPrimary ──────────────────────────────────────────────────────────────

func TestClientSyncService_SyncPrimary_MergesDelta(t *testing.T) {
	local := models.EntityMap{"a": note("local", 10)}
	s, ad, _, view := newTestClientSync(t, local, 0)

	ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, local).
		Return(models.EntityMap{"b": note("remote", 20)}, nil)

	require.NoError(t, s.SyncPrimary(context.Background()))

	got, ok := s.notes.Get("b")
	require.True(t, ok)
	assert.Equal(t, "remote", got.Content.Text)
	assert.Equal(t, []bool{false}, view.got())
}

func TestClientSyncService_SyncPrimary_SelectedChanged(t *testing.T) {
	s, ad, _, view := newTestClientSync(t, models.EntityMap{"a": note("local", 10)}, 0)
	view.selected = "a"

	ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, gomock.Any()).
		Return(models.EntityMap{"a": note("remote", 20)}, nil)

	require.NoError(t, s.SyncPrimary(context.Background()))
	assert.Equal(t, "remote", s.notes.Text("a"))
	assert.Equal(t, []bool{true}, view.got())
}

func TestClientSyncService_SyncPrimary_EmptyDeltaDoesNotRender(t *testing.T) {
	s, ad, _, view := newTestClientSync(t, models.EntityMap{"a": note("local", 10)}, 0)
	ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, gomock.Any()).Return(models.EntityMap{}, nil)

	require.NoError(t, s.SyncPrimary(context.Background()))
	assert.Empty(t, view.got())
}

func TestClientSyncService_SyncPrimary_ErrorKeepsState(t *testing.T) {
	local := models.EntityMap{"a": note("local", 10)}
	s, ad, _, view := newTestClientSync(t, local, 0)
	ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, gomock.Any()).
		Return(nil, fmt.Errorf("%w: invalidkey", adapter.ErrForbidden))

	err := s.SyncPrimary(context.Background())
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Equal(t, local, s.notes.Snapshot())
	assert.Empty(t, view.got())
}

func TestClientSyncService_SyncPrimary_WithoutCredentials(t *testing.T) {
	s, _, _, _ := newTestClientSync(t, nil, 0)
	s.setCredentials(models.Credentials{})

	assert.ErrorIs(t, s.SyncPrimary(context.Background()), models.ErrInvalidCredentials)
}

func TestClientSyncService_SyncPrimary_SkipsWhileInFlight(t *testing.T) {
	s, ad, _, _ := newTestClientSync(t, nil, 0)

	started := make(chan struct{})
	release := make(chan struct{})
	ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, gomock.Any()).
		DoAndReturn(func(context.Context, models.Credentials, models.EntityMap) (models.EntityMap, error) {
			close(started)
			<-release
			return models.EntityMap{}, nil
		}).Times(1)

	done := make(chan error, 1)
	go func() { done <- s.SyncPrimary(context.Background()) }()

	<-started
	// второй тик при незавершённом первом пропускается
	require.NoError(t, s.SyncPrimary(context.Background()))

	close(release)
	require.NoError(t, <-done)
}

func TestClientSyncService_SyncPrimary_TimeoutReleasesLock(t *testing.T) {
	s, ad, _, _ := newTestClientSync(t, nil, 20*time.Millisecond)

	gomock.InOrder(
		ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ models.Credentials, _ models.EntityMap) (models.EntityMap, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		ad.EXPECT().UploadAndMerge(gomock.Any(), testCreds, gomock.Any()).Return(models.EntityMap{}, nil),
	)

	err := s.SyncPrimary(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, s.SyncPrimary(context.Background()))
}

// ── SyncShared ───────────────────────────────────────────────────────────────

func sharedTree() models.EntityMap {
	root := note("shared root", 10)
	root.Shared = true
	root.SharedID = sharedCreds.ID
	root.SharedKey = sharedCreds.Key

	broken := note("no credentials", 10)
	broken.Shared = true

	binned := root
	binned.ParentID = models.TrashID
	binned.SharedID = "otherid123456789"

	return models.EntityMap{
		"r":      root,
		"c":      child("r", "mine", 10),
		"x":      note("private", 10),
		"broken": broken,
		"binned": binned,
	}
}

func TestClientSyncService_SyncShared_ContentOnly(t *testing.T) {
	tree := sharedTree()
	s, ad, _, view := newTestClientSync(t, tree, 0)
	view.selected = "c"

	theirs := child("their-parent", "theirs", 50)
	theirs.IsPinned = true

	ad.EXPECT().UploadAndMerge(gomock.Any(), sharedCreds, models.EntityMap{"r": tree["r"], "c": tree["c"]}).
		Return(models.EntityMap{"c": theirs}, nil)

	require.NoError(t, s.SyncShared(context.Background()))

	got, ok := s.notes.Get("c")
	require.True(t, ok)
	assert.Equal(t, "theirs", got.Content.Text)
	assert.Equal(t, "r", got.ParentID)
	assert.False(t, got.IsPinned)
	assert.Equal(t, []bool{true}, view.got())
}

func TestClientSyncService_SyncShared_ErrorsAreJoined(t *testing.T) {
	s, ad, _, _ := newTestClientSync(t, sharedTree(), 0)
	ad.EXPECT().UploadAndMerge(gomock.Any(), sharedCreds, gomock.Any()).
		Return(nil, fmt.Errorf("%w: limit", adapter.ErrTooManyRequests))

	err := s.SyncShared(context.Background())
	assert.ErrorIs(t, err, ErrLimit)
}

func TestClientSyncService_SyncShared_NothingShared(t *testing.T) {
	s, _, _, _ := newTestClientSync(t, models.EntityMap{"a": note("a", 1)}, 0)
	assert.NoError(t, s.SyncShared(context.Background()))
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Save(t *testing.T) {
	ctx := context.Background()
	s, _, repo, _ := newTestClientSync(t, models.EntityMap{"a": note("a", 1)}, 0)

	repo.EXPECT().SaveEntities(ctx, models.EntityMap{"a": note("a", 1)}).Return(nil)
	require.NoError(t, s.Save(ctx))

	// без изменений повторно не пишем
	require.NoError(t, s.Save(ctx))

	s.notes.SetText("a", "changed")
	repo.EXPECT().SaveEntities(ctx, gomock.Any()).Return(nil)
	require.NoError(t, s.Save(ctx))
}

func TestClientSyncService_SaveError(t *testing.T) {
	ctx := context.Background()
	s, _, repo, _ := newTestClientSync(t, models.EntityMap{"a": note("a", 1)}, 0)
	dbErr := errors.New("disk full")

	gomock.InOrder(
		repo.EXPECT().SaveEntities(ctx, gomock.Any()).Return(dbErr),
		repo.EXPECT().SaveEntities(ctx, gomock.Any()).Return(nil),
	)

	assert.ErrorIs(t, s.Save(ctx), dbErr)
	// после ошибки следующая попытка снова пишет
	assert.NoError(t, s.Save(ctx))
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{in: adapter.ErrForbidden, want: ErrInvalidKey},
		{in: adapter.ErrNotFound, want: ErrNotFound},
		{in: adapter.ErrConflict, want: ErrExists},
		{in: adapter.ErrTooManyRequests, want: ErrLimit},
		{in: adapter.ErrBadRequest, want: ErrMalformed},
		{in: adapter.ErrInternalServerError, want: ErrServerFailure},
		{in: adapter.ErrRejected, want: ErrServerFailure},
	}
	for _, tt := range tests {
		t.Run(tt.in.Error(), func(t *testing.T) {
			err := mapAdapterError(fmt.Errorf("%w: code", tt.in))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.in)
		})
	}

	assert.NoError(t, mapAdapterError(nil))

	other := errors.New("connection refused")
	assert.Equal(t, other, mapAdapterError(other))
}
