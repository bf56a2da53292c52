// Package gc removes blobs nobody has read or written for a long time.
//
// Sweeps are cheap and sampled: each one looks at a handful of random blobs
// rather than scanning the whole store, so they can piggyback on regular
// requests.
package gc

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/quota"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// EventRecorder counts informational events.
type EventRecorder interface {
	Record(ctx context.Context, event quota.Event)
}

type Sweeper struct {
	blobs    store.BlobStorage
	recorder EventRecorder
	cfg      config.GC

	intN func(n int) int
	now  func() time.Time

	running atomic.Bool
}

// Option customizes a [Sweeper].
type Option func(*Sweeper)

// WithRand replaces the source of random indexes. intN must return a value
// in [0, n).
func WithRand(intN func(n int) int) Option {
	return func(s *Sweeper) { s.intN = intN }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Sweeper) { s.now = now }
}

func NewSweeper(blobs store.BlobStorage, recorder EventRecorder, cfg config.GC, opts ...Option) *Sweeper {
	s := &Sweeper{
		blobs:    blobs,
		recorder: recorder,
		cfg:      cfg,
		intN:     rand.IntN,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaybeSweep runs a sweep with probability 1/SampleEvery. It reports whether
// a sweep ran.
func (s *Sweeper) MaybeSweep(ctx context.Context) bool {
	if s.cfg.SampleEvery <= 0 || s.intN(s.cfg.SampleEvery) != 0 {
		return false
	}

	if _, err := s.Sweep(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Sweeper.MaybeSweep").Msg("sweep failed")
	}
	return true
}

// Sweep checks SampleSize randomly chosen blobs (with repetition) and deletes
// those idle for longer than MaxIdle. Idleness is checked again by the storage
// at delete time, so a blob touched after the listing survives. A sweep
// started while another one is running returns immediately.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer s.running.Store(false)

	blobs, err := s.blobs.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing blobs: %w", err)
	}
	if len(blobs) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)
	cutoff := s.now().Add(-s.cfg.MaxIdle)
	checked := make(map[models.BlobInfo]bool)
	deleted := 0

	for i := 0; i < s.cfg.SampleSize; i++ {
		blob := blobs[s.intN(len(blobs))]
		if checked[blob] {
			continue
		}
		if !blob.AccessedAt.Before(cutoff) {
			continue
		}

		removed, err := s.blobs.DeleteIfIdle(ctx, blob.Namespace, blob.ID, cutoff)
		if err != nil {
			log.WithBlob(string(blob.Namespace), blob.ID).Err(err).
				Msg("failed to delete abandoned blob")
			continue
		}
		checked[blob] = true
		if !removed {
			log.WithBlob(string(blob.Namespace), blob.ID).Debug().
				Msg("blob was used after listing, kept")
			continue
		}
		deleted++

		s.recorder.Record(ctx, quota.EventCleanUp)
		log.WithBlob(string(blob.Namespace), blob.ID).Info().
			Time("accessed_at", blob.AccessedAt).
			Msg("abandoned blob deleted")
	}

	return deleted, nil
}
