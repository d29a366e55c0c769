// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package app assembles the full device-side stack: identity keyring,
// snapshot store, cache coordinator, relay adapter, and sync services.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/session-foundation/configsync/internal/adapter"
	"github.com/session-foundation/configsync/internal/cache"
	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/crypto"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/projection"
	"github.com/session-foundation/configsync/internal/service"
	"github.com/session-foundation/configsync/internal/store"
	"github.com/session-foundation/configsync/models"
)

// Device is one running sync participant. A process normally hosts one, but
// the simulator hosts several against a shared relay.
type Device struct {
	Owner       models.Owner
	Coordinator cache.Coordinator
	Services    *service.Services

	snapshots store.SnapshotStore
	logger    *logger.Logger
}

// NewDevice wires a device from its config and a relay adapter. The identity
// secret is decoded from hex, registered in a locked-memory keyring, and the
// owner identity is derived from it. Every document type is loaded from its
// snapshot before the device is handed back.
func NewDevice(ctx context.Context, cfg *config.DeviceConfig, relayAdapter adapter.RelayAdapter, log *logger.Logger) (*Device, error) {
	secret, err := crypto.ParseSecretHex(cfg.App.IdentitySecretHex)
	if err != nil {
		return nil, fmt.Errorf("parse identity secret: %w", err)
	}

	owner := crypto.DeriveOwner(secret)
	if cfg.App.Owner != "" && models.Owner(cfg.App.Owner) != owner {
		return nil, fmt.Errorf("configured owner %s does not match identity secret", cfg.App.Owner)
	}

	keyring := crypto.NewKeyring()
	keyring.Register(owner, secret)

	snapshots, err := store.NewSnapshotStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create snapshot store: %w", err)
	}

	coordinator := cache.NewCoordinator(keyring, snapshots, projection.NewLogProjector(log), log)
	if err = coordinator.LoadAll(ctx, owner); err != nil {
		_ = snapshots.Close()
		return nil, fmt.Errorf("load config objects: %w", err)
	}

	return &Device{
		Owner:       owner,
		Coordinator: coordinator,
		Services:    service.NewServices(coordinator, relayAdapter, log),
		snapshots:   snapshots,
		logger:      log,
	}, nil
}

// Run starts the background sync job. The job stops when ctx is cancelled.
func (d *Device) Run(ctx context.Context, interval time.Duration) {
	d.Services.SyncJob.Start(ctx, d.Owner, interval)
}

// Close stops the sync job and releases the snapshot store.
func (d *Device) Close() error {
	d.Services.SyncJob.Stop()
	return d.snapshots.Close()
}
