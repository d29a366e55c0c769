// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package models

import "encoding/json"

// IncomingMessage is one config message fetched from the relay. Payload is
// the sealed push blob exactly as stored; Hash and SentAt are assigned by
// the relay (SentAt is untrusted and is never used for conflict
// arbitration, only for bookkeeping).
type IncomingMessage struct {
	Payload []byte       `json:"payload"`
	Hash    string       `json:"hash"`
	SentAt  int64        `json:"sent_at"`
	Type    DocumentType `json:"type"`
}

// PendingPush is a serialized state snapshot awaiting relay storage. Seqno
// identifies the push so that a later confirmation can be matched to it.
type PendingPush struct {
	Type    DocumentType `json:"type"`
	Payload []byte       `json:"payload"`
	Seqno   int64        `json:"seqno"`
}

// PendingChanges is the result of collecting an owner's outstanding sync
// work: at most one push per document type, plus relay hashes that are now
// superseded and should be deleted from the relay. ObsoleteHashes can be
// non-empty even when Pushes is empty, because a confirmation or merge can
// retire hashes without leaving new local edits behind.
type PendingChanges struct {
	Pushes         []PendingPush `json:"pushes"`
	ObsoleteHashes []string      `json:"obsolete_hashes"`
}

// MergeResult reports the outcome of folding one inbound batch into a
// config object.
type MergeResult struct {
	// Incorporated lists the relay hashes that were successfully parsed and
	// applied (or recognised as duplicates of already-applied state).
	// Malformed payloads are absent from this list.
	Incorporated []string

	// MaxTimestamp is the largest relay timestamp among incorporated
	// messages, or zero when nothing was incorporated.
	MaxTimestamp int64

	// Changes lists every field whose resolved value differs from the
	// pre-merge state, for projection into the application-visible store.
	Changes []FieldChange
}

// FieldChange describes one resolved field mutation to be projected into
// the local application store. Value is the canonical JSON encoding of the
// new value; a nil Value means the field was deleted.
type FieldChange struct {
	Type  DocumentType    `json:"type"`
	Owner Owner           `json:"owner"`
	Field string          `json:"field"`
	Value json.RawMessage `json:"value,omitempty"`
	At    int64           `json:"at"`
}
