// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package store

import "errors"

var (
	// ErrSnapshotNotFound is returned by Load when no snapshot exists for
	// the requested key.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrUnknownBackend is returned by the factory for a backend name
	// other than "sqlite" or "badger".
	ErrUnknownBackend = errors.New("unknown snapshot store backend")
)
