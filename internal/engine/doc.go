// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package engine implements the config-object core of the synchronization
// engine: one mutable document per (document-type, owner) with typed field
// state, deterministic push/dump serialization, and an order-independent
// merge that folds unordered relay message batches into a single resolved
// state.
//
// The engine performs no I/O. Persistence, transport, and projection are
// collaborators orchestrated by the cache and service layers; everything in
// this package is a bounded, synchronous operation over in-memory state,
// which is what lets the coordinator run it under a per-document lock.
//
// Conflict arbitration is content-derived: when two messages assign
// different values to the same field, the value whose canonical encoding
// has the lexicographically larger SHA-256 digest wins. Relay timestamps
// are adversary-influenceable and are never consulted for arbitration.
package engine
