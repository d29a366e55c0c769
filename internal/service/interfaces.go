// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_service_mock.go -package=mock

package service

import (
	"context"
	"time"

	"github.com/session-foundation/configsync/models"
)

// SyncService runs one device's side of the sync protocol against a relay.
type SyncService interface {
	// FullSync performs one complete sync round for owner: fetch and merge
	// everything the relay accumulated since the last round, push every
	// document with unconfirmed local edits, confirm accepted pushes, and
	// garbage-collect superseded relay messages. Safe to call repeatedly;
	// a round with nothing to do is a cheap no-op.
	FullSync(ctx context.Context, owner models.Owner) error
}

// SyncJob is the background worker that keeps a device converged: it calls
// FullSync on a ticker and immediately on relay wakeup notifications.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 30 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, owner models.Owner, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
