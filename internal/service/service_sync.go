// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package service runs the device-side sync protocol: fetch, merge, push,
// confirm, and relay garbage collection, in that order, one round at a time.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/session-foundation/configsync/internal/adapter"
	"github.com/session-foundation/configsync/internal/cache"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

type syncService struct {
	coordinator cache.Coordinator
	relay       adapter.RelayAdapter
	logger      *logger.Logger

	mu    sync.RWMutex
	since map[models.Owner]int64
}

func NewSyncService(coordinator cache.Coordinator, relay adapter.RelayAdapter, log *logger.Logger) SyncService {
	return &syncService{
		coordinator: coordinator,
		relay:       relay,
		logger:      log,
		since:       make(map[models.Owner]int64),
	}
}

// FullSync implements SyncService. The ordering matters: merging before
// pushing means a push already reflects everything the relay delivered, and
// confirming before garbage collection means superseded hashes are known
// before the delete request is built.
func (s *syncService) FullSync(ctx context.Context, owner models.Owner) error {
	if owner == "" {
		return ErrNoOwnerProvided
	}

	incoming, err := s.relay.FetchIncoming(ctx, owner, s.watermark(owner))
	if err != nil {
		return fmt.Errorf("fetch incoming messages: %w", err)
	}

	if len(incoming) > 0 {
		result, err := s.coordinator.MergeIncoming(ctx, owner, incoming)
		if err != nil {
			return fmt.Errorf("merge incoming messages: %w", err)
		}
		s.advanceWatermark(owner, result.MaxTimestamp)
		s.logger.Debug().
			Str("func", "syncService.FullSync").
			Int("incoming", len(incoming)).
			Int("incorporated", len(result.Incorporated)).
			Int("changes", len(result.Changes)).
			Msg("merged relay batch")
	}

	pending, err := s.coordinator.PendingChanges(ctx, owner)
	if err != nil {
		return fmt.Errorf("collect pending changes: %w", err)
	}

	confirmed := 0
	for _, push := range pending.Pushes {
		stored, err := s.relay.SendPush(ctx, owner, push)
		if err != nil {
			return fmt.Errorf("push %s: %w", push.Type, err)
		}
		key := models.Key{Type: push.Type, Owner: owner}
		if err = s.coordinator.ConfirmPushed(ctx, key, push.Seqno, stored.Hash); err != nil {
			return fmt.Errorf("confirm push %s: %w", push.Type, err)
		}
		confirmed++
	}

	// A confirmation retires the previously confirmed relay hash, so the
	// obsolete set has to be re-collected after the push loop.
	obsolete := pending.ObsoleteHashes
	if confirmed > 0 {
		refreshed, err := s.coordinator.PendingChanges(ctx, owner)
		if err != nil {
			return fmt.Errorf("re-collect obsolete hashes: %w", err)
		}
		obsolete = refreshed.ObsoleteHashes
	}

	if len(obsolete) == 0 {
		return nil
	}

	if err = s.relay.DeleteMessages(ctx, owner, obsolete); err != nil {
		return fmt.Errorf("delete obsolete relay messages: %w", err)
	}
	if err = s.pruneObsolete(ctx, owner, obsolete); err != nil {
		return err
	}

	s.logger.Debug().
		Str("func", "syncService.FullSync").
		Int("pushed", confirmed).
		Int("obsolete_deleted", len(obsolete)).
		Msg("sync round complete")

	return nil
}

// pruneObsolete drops the deleted hashes from every loaded document of the
// owner. A document holds only its own hashes, so handing the full list to
// each one is safe.
func (s *syncService) pruneObsolete(ctx context.Context, owner models.Owner, hashes []string) error {
	for _, typ := range models.AllDocumentTypes() {
		key := models.Key{Type: typ, Owner: owner}
		err := s.coordinator.PruneObsolete(ctx, key, hashes)
		if err == nil || errors.Is(err, cache.ErrObjectNotLoaded) {
			continue
		}
		return fmt.Errorf("prune obsolete hashes for %s: %w", key, err)
	}
	return nil
}

func (s *syncService) watermark(owner models.Owner) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.since[owner]
}

// advanceWatermark moves the fetch cursor to maxTimestamp, not past it.
// Relay timestamps are coarse, so a message stored after the fetch can
// share the boundary timestamp; keeping the cursor on it means the next
// fetch sees that message too. Re-delivery of the already-merged boundary
// messages is harmless because merging is idempotent.
func (s *syncService) advanceWatermark(owner models.Owner, maxTimestamp int64) {
	if maxTimestamp <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxTimestamp > s.since[owner] {
		s.since[owner] = maxTimestamp
	}
}
