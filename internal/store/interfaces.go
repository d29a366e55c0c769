// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package store

import (
	"context"

	"github.com/session-foundation/configsync/models"
)

// SnapshotStore persists sealed dump blobs, one row per (document type,
// owner). A snapshot is an opaque ciphertext to the store; only the engine
// holding the document key can read it back.
type SnapshotStore interface {
	// Save writes or replaces the snapshot for key. appliedAt is the Unix
	// timestamp of the dump, kept for diagnostics.
	Save(ctx context.Context, key models.Key, blob []byte, appliedAt int64) error

	// Load returns the snapshot blob and its appliedAt timestamp.
	// Returns [ErrSnapshotNotFound] when no row exists for key.
	Load(ctx context.Context, key models.Key) ([]byte, int64, error)

	// Delete removes the snapshot for key. Deleting a missing row is not
	// an error.
	Delete(ctx context.Context, key models.Key) error

	// List returns the keys of every stored snapshot belonging to owner.
	List(ctx context.Context, owner models.Owner) ([]models.Key, error)

	// Close releases the underlying backend.
	Close() error
}
