// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// GCWorker runs full sweeps on a cron schedule, in addition to the sampled
// sweeps triggered by requests.
type GCWorker struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGCWorker parses schedule, a six-field cron spec (seconds first) or a
// descriptor such as "@every 1h" or "@daily".
func NewGCWorker(schedule string, sweeper Sweeper, log *logger.Logger) (*GCWorker, error) {
	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	w := &GCWorker{
		cron:    cron.New(),
		sweeper: sweeper,
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
	}

	if err := w.cron.AddFunc(schedule, w.sweep); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid gc schedule %q: %w", schedule, err)
	}

	return w, nil
}

func (w *GCWorker) sweep() {
	w.wg.Add(1)
	defer w.wg.Done()

	if w.ctx.Err() != nil {
		return
	}

	deleted, err := w.sweeper.Sweep(w.ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "GCWorker.sweep").Msg("scheduled sweep failed")
		return
	}
	w.logger.Debug().Int("deleted", deleted).Msg("scheduled sweep finished")
}

func (w *GCWorker) Run() {
	w.logger.Info().Msg("gc worker started")
	w.cron.Start()
}

func (w *GCWorker) Stop() {
	w.cron.Stop()
	w.cancel()
	w.wg.Wait()
	w.logger.Info().Msg("gc worker stopped")
}
