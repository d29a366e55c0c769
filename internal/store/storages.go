// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package store persists sealed config snapshots. Two backends are
// provided: a SQLite database (default, one file per device) and a Badger
// key-value store (embedded or in-memory). Both implement [SnapshotStore].
package store

import (
	"context"
	"fmt"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
)

// NewSnapshotStore constructs the snapshot store selected by cfg.Backend.
func NewSnapshotStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (SnapshotStore, error) {
	switch cfg.Backend {
	case "", "sqlite":
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return NewSnapshotRepository(db, log), nil
	case "badger":
		return NewBadgerStore(cfg.BadgerDir, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
