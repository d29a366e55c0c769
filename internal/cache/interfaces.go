// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package cache coordinates the live config objects of a device: loading
// them from snapshots, serializing access per document, folding incoming
// relay batches in priority order, and staging persistence and projection
// outside the per-document critical sections.
package cache

//go:generate mockgen -source=interfaces.go -destination=../mock/coordinator_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/session-foundation/configsync/models"
)

// Coordinator is the single entry point the sync service and the embedding
// application use to touch config state. All methods are safe for
// concurrent use; operations on different documents proceed in parallel.
type Coordinator interface {
	// Load restores the object for key from its stored snapshot, or
	// creates a fresh one when no snapshot exists, and registers it.
	Load(ctx context.Context, key models.Key) error

	// LoadAll loads every document type for owner.
	LoadAll(ctx context.Context, owner models.Owner) error

	// Remove discards the object for key and deletes its snapshot.
	Remove(ctx context.Context, key models.Key) error

	// SetField records a local edit and persists a fresh dump.
	SetField(ctx context.Context, key models.Key, field string, value any) error

	// DeleteField records a local tombstone and persists a fresh dump.
	DeleteField(ctx context.Context, key models.Key, field string) error

	// GetField reads the current value of field into target. The boolean
	// reports presence.
	GetField(ctx context.Context, key models.Key, field string, target any) (bool, error)

	// CurrentFields returns a copy of the live fields of key.
	CurrentFields(ctx context.Context, key models.Key) (map[string]json.RawMessage, error)

	// PendingChanges collects everything the owner's documents need sent
	// to the relay: push payloads in merge-priority order plus relay
	// hashes eligible for deletion. Returns [ErrUserDoesNotExist] when
	// owner has no registered identity.
	PendingChanges(ctx context.Context, owner models.Owner) (models.PendingChanges, error)

	// MergeIncoming partitions batch by document type, merges each group
	// in merge-priority order, persists the resulting dumps and projects
	// the incorporated field changes. Documents not yet loaded are loaded
	// on demand.
	MergeIncoming(ctx context.Context, owner models.Owner, batch []models.IncomingMessage) (models.MergeResult, error)

	// ConfirmPushed records relay acceptance of a push and persists the
	// updated bookkeeping.
	ConfirmPushed(ctx context.Context, key models.Key, seqno int64, relayHash string) error

	// PruneObsolete drops relay hashes that have been deleted from the
	// relay out of the object's obsolete set.
	PruneObsolete(ctx context.Context, key models.Key, hashes []string) error
}
