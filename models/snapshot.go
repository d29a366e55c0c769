// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package models

// Snapshot is one persisted dump row: an opaque blob sufficient to restore
// a config object, plus the metadata the store keys it by. One row exists
// per (document-type, owner).
type Snapshot struct {
	Type      DocumentType `json:"type"`
	Owner     Owner        `json:"owner"`
	Blob      []byte       `json:"blob"`
	AppliedAt int64        `json:"applied_at"`
}
