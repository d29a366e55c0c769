// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
// The relay assigns a hash to every stored payload, so allocations on that
// path add up.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashPayload computes the hex-encoded SHA-256 digest of a relay payload.
// This digest is the message's identity on the relay: devices address
// messages by it when confirming pushes and deleting obsolete entries.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func HashPayload(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
