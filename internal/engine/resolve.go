// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// fieldCandidate is one proposed value for a logical field during conflict
// resolution: the canonical encoding, its content digest, the tombstone
// flag, and the relay hash of the message that sourced it (empty for local
// unconfirmed edits).
type fieldCandidate struct {
	Value      json.RawMessage
	Digest     string
	Deleted    bool
	SourceHash string
}

// digestOf computes the content digest a candidate is arbitrated by:
// hex(SHA-256(field ‖ 0x00 ‖ deletedByte ‖ 0x00 ‖ value)). Covering the
// field name and the tombstone flag keeps a delete of one field from ever
// colliding with a set of another.
func digestOf(field string, value json.RawMessage, deleted bool) string {
	h := sha256.New()
	h.Write([]byte(field))
	h.Write([]byte{0x00})
	if deleted {
		h.Write([]byte{0x01})
	} else {
		h.Write([]byte{0x00})
	}
	h.Write([]byte{0x00})
	h.Write(value)
	return hex.EncodeToString(h.Sum(nil))
}

// resolve picks the winning candidate for one logical field. The rule is a
// pure function of content: the lexicographically larger digest wins, so
// every device that eventually observes the same message set converges on
// the same value regardless of arrival order. Equal digests mean equal
// content; the relay-backed candidate with the larger source hash is then
// preferred so that all devices also agree on which message backs the
// field.
func resolve(candidates []fieldCandidate) fieldCandidate {
	winner := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case c.Digest > winner.Digest:
			winner = c
		case c.Digest == winner.Digest && c.SourceHash > winner.SourceHash:
			winner = c
		}
	}
	return winner
}
