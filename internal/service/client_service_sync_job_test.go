// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncService считает вызовы каждого цикла.
type spySyncService struct {
	primary atomic.Int64
	shared  atomic.Int64
	saves   atomic.Int64
}

func (s *spySyncService) LoadCredentials(context.Context, string) (models.Credentials, error) {
	return models.Credentials{}, nil
}

func (s *spySyncService) Credentials() models.Credentials { return models.Credentials{} }

func (s *spySyncService) SetPresenter(Presenter) {}

func (s *spySyncService) SyncPrimary(context.Context) error {
	s.primary.Add(1)
	return nil
}

func (s *spySyncService) SyncShared(context.Context) error {
	s.shared.Add(1)
	return nil
}

func (s *spySyncService) Save(context.Context) error {
	s.saves.Add(1)
	return nil
}

func (s *spySyncService) total() int64 {
	return s.primary.Load() + s.shared.Load() + s.saves.Load()
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, 0, logger.Nop())
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_RunsAllLoops(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, 0, logger.Nop())

	// Интервал 10ms, за 55ms должно быть ~5 тиков каждого цикла
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.primary.Load(), int64(3))
	assert.GreaterOrEqual(t, spy.shared.Load(), int64(3))
	assert.GreaterOrEqual(t, spy.saves.Load(), int64(3))
}

func TestClientSyncJob_SaveIntervalIsIndependent(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, time.Hour, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.primary.Load(), int64(2))
	assert.Equal(t, int64(0), spy.saves.Load())
}

func TestClientSyncJob_Stop_StopsLoops(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, 0, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.total()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.total(), "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, 0, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, 0, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, 0, logger.Nop())

	// interval <= 0 → дефолт 1s, за 20ms вызовов быть не должно
	job.Start(context.Background(), -1)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.total())
}

func TestClientSyncJob_ContextCancelStopsLoops(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, 0, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	job.Stop()

	calls := spy.total()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, calls, spy.total())
}

func TestClientSyncJob_RestartReplacesLoops(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, 0, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), time.Hour)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.total())
}
