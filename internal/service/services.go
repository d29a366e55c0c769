// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package service

import (
	"github.com/session-foundation/configsync/internal/adapter"
	"github.com/session-foundation/configsync/internal/cache"
	"github.com/session-foundation/configsync/internal/logger"
)

type Services struct {
	SyncService SyncService
	SyncJob     SyncJob
}

func NewServices(coordinator cache.Coordinator, relay adapter.RelayAdapter, log *logger.Logger) *Services {
	syncSvc := NewSyncService(coordinator, relay, log)

	return &Services{
		SyncService: syncSvc,
		SyncJob:     NewSyncJob(syncSvc, relay, log),
	}
}
