package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const defaultSyncInterval = time.Second

type clientSyncJob struct {
	syncService  ClientSyncService
	saveInterval time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates the job driving syncService. saveInterval sets the
// cadence of the saving loop; zero makes it follow the sync interval. The job
// is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, saveInterval time.Duration, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, saveInterval: saveInterval, logger: logger}
}

// Start implements ClientSyncJob. If interval is zero or negative it defaults
// to one second. The loops exit when ctx is cancelled or Stop is called.
// Errors are already logged by the sync service; a failed tick changes
// nothing locally and the next tick retries.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	saveInterval := j.saveInterval
	if saveInterval <= 0 {
		saveInterval = interval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.mu.Unlock()

	j.loop(jobCtx, "primary", interval, j.syncService.SyncPrimary)
	j.loop(jobCtx, "shared", interval, j.syncService.SyncShared)
	j.loop(jobCtx, "saving", saveInterval, j.syncService.Save)
}

func (j *clientSyncJob) loop(ctx context.Context, name string, interval time.Duration, tick func(context.Context) error) {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.logger.Debug().Str("loop", name).Dur("interval", interval).Msg("loop started")
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				_ = tick(ctx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It is a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
