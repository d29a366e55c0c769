// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package service

import (
	"context"
	"sync"
	"time"

	"github.com/session-foundation/configsync/internal/adapter"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

type syncJob struct {
	syncService SyncService
	relay       adapter.RelayAdapter
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.FullSync on a ticker
// and on relay wakeup notifications. The job is idle until Start is called.
func NewSyncJob(syncService SyncService, relay adapter.RelayAdapter, log *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, relay: relay, logger: log}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine syncing every interval. If interval is
// zero or negative it defaults to 30 seconds. Between ticks the goroutine
// also reacts to relay wakeup notifications, so a push from another device
// is merged without waiting out the interval. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, owner models.Owner, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	wake, err := j.relay.Subscribe(jobCtx, owner)
	if err != nil {
		// Degrade to ticker-only syncing.
		j.logger.Warn().
			Str("func", "syncJob.Start").
			Err(err).
			Msg("relay subscription unavailable")
		wake = nil
	}

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case _, ok := <-wake:
				if !ok {
					wake = nil
					continue
				}
			}
			if err := j.syncService.FullSync(jobCtx, owner); err != nil {
				j.logger.Error().
					Str("func", "syncJob.Start").
					Err(err).
					Msg("sync round failed")
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
