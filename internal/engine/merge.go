// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import (
	"encoding/json"
	"fmt"

	"github.com/session-foundation/configsync/models"
)

// Merge deterministically folds a batch of relay messages into the object's
// state.
//
// Guarantees:
//   - Structural validation happens before any mutation: a batch entry with
//     a nil payload or empty hash fails the whole call with
//     [ErrMalformedBatch] and the object is untouched.
//   - A message that fails to open or parse is logged and skipped; the rest
//     of the batch still merges.
//   - Already-incorporated hashes are skipped, making re-delivery of a
//     batch a no-op (exactly-once effective application).
//   - Conflicting field assignments are arbitrated by content digest via
//     resolve, so the final state is independent of message order.
//
// The returned result lists the incorporated hashes, the maximum relay
// timestamp among them, and every field whose resolved value changed.
func (o *Object) Merge(batch []models.IncomingMessage) (models.MergeResult, error) {
	for i, msg := range batch {
		if msg.Payload == nil || msg.Hash == "" {
			return models.MergeResult{}, fmt.Errorf("%w: entry %d has no payload or hash", ErrMalformedBatch, i)
		}
	}

	var res models.MergeResult
	prev := o.currentHashSet()
	newlyIncorporated := 0

	for _, msg := range batch {
		if _, seen := o.known[msg.Hash]; seen {
			// Relay re-delivery. The content is already folded in; still
			// report the hash as incorporated so the caller need not
			// special-case duplicates.
			res.Incorporated = append(res.Incorporated, msg.Hash)
			if msg.SentAt > res.MaxTimestamp {
				res.MaxTimestamp = msg.SentAt
			}
			continue
		}

		wire, err := o.openPush(msg.Payload)
		if err != nil {
			o.log.Warn().
				Stringer("key", o.key).
				Str("hash", msg.Hash).
				Err(err).
				Msg("skipping malformed config message")
			continue
		}

		o.known[msg.Hash] = struct{}{}
		newlyIncorporated++
		res.Incorporated = append(res.Incorporated, msg.Hash)
		if msg.SentAt > res.MaxTimestamp {
			res.MaxTimestamp = msg.SentAt
		}
		if wire.Seqno > o.seqno {
			o.seqno = wire.Seqno
		}

		for name, wf := range wire.Fields {
			change, changed := o.foldField(name, wf, msg)
			if changed {
				res.Changes = append(res.Changes, change)
			}
		}
	}

	if newlyIncorporated > 0 {
		// The incorporated-hash set (at minimum) changed, so a snapshot is
		// required to keep idempotence across restarts.
		o.needsDump = true
		if !o.hasLocalSource() {
			// Every field is relay-backed now, so hashes displaced by
			// local edits have durably stored successors too.
			o.retireDisplaced(prev)
		}
		o.retireSuperseded(prev)
		o.retireLosers(res.Incorporated)
		o.needsPush = o.hasLocalSource()
	}

	o.log.Debug().
		Stringer("key", o.key).
		Int("batch", len(batch)).
		Int("incorporated", newlyIncorporated).
		Int("changes", len(res.Changes)).
		Msg("merged incoming batch")

	return res, nil
}

// openPush unseals and decodes one push payload, validating the envelope
// version. Truncated or corrupted blobs are rejected whole — partial
// application is not a defined state.
func (o *Object) openPush(payload []byte) (pushWire, error) {
	plain, err := o.sealer.Open(payload)
	if err != nil {
		return pushWire{}, err
	}

	var wire pushWire
	if err := json.Unmarshal(plain, &wire); err != nil {
		return pushWire{}, fmt.Errorf("decode push payload: %w", err)
	}
	if wire.V != pushWireVersion {
		return pushWire{}, fmt.Errorf("unsupported push version %d", wire.V)
	}
	return wire, nil
}

// foldField arbitrates one incoming field assignment against the current
// state. Returns the projected change when the resolved value differs from
// the pre-fold state.
func (o *Object) foldField(name string, wf wireField, msg models.IncomingMessage) (models.FieldChange, bool) {
	candidate := fieldCandidate{
		Value:      wf.Value,
		Digest:     digestOf(name, wf.Value, wf.Deleted),
		Deleted:    wf.Deleted,
		SourceHash: msg.Hash,
	}

	existing, ok := o.fields[name]
	if ok {
		winner := resolve([]fieldCandidate{
			{Value: existing.Value, Digest: existing.Digest, Deleted: existing.Deleted, SourceHash: existing.SourceHash},
			candidate,
		})
		if winner.Digest == existing.Digest {
			// Same resolved content. Rebind to the winning source so every
			// device agrees on which message backs the field.
			if winner.SourceHash != existing.SourceHash {
				existing.SourceHash = winner.SourceHash
				o.fields[name] = existing
			}
			return models.FieldChange{}, false
		}
	}

	// Adopting a remote value is a state change no already-generated push
	// carries. Advance the epoch past the last push so a late confirmation
	// cannot rebind this field to that push's hash.
	o.editEpoch++
	o.fields[name] = fieldState{
		Value:      candidate.Value,
		Digest:     candidate.Digest,
		Deleted:    candidate.Deleted,
		SourceHash: candidate.SourceHash,
		epoch:      o.editEpoch,
	}

	change := models.FieldChange{
		Type:  o.key.Type,
		Owner: o.key.Owner,
		Field: name,
		At:    msg.SentAt,
	}
	if !candidate.Deleted {
		change.Value = candidate.Value
	}
	return change, true
}

// retireLosers marks incorporated message hashes that ended up backing no
// field as obsolete: every value they carried lost arbitration, so the
// stored message is immediately superseded.
func (o *Object) retireLosers(incorporated []string) {
	current := o.currentHashSet()
	for _, h := range incorporated {
		if _, referenced := current[h]; !referenced {
			o.obsolete[h] = struct{}{}
		}
	}
}
