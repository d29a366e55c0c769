// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/session-foundation/configsync/internal/crypto"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

// fieldState is the resolved state of one logical field, together with the
// bookkeeping the merge and confirm paths arbitrate by.
type fieldState struct {
	Value      json.RawMessage `json:"value,omitempty"`
	Digest     string          `json:"digest"`
	Deleted    bool            `json:"deleted,omitempty"`
	SourceHash string          `json:"source_hash,omitempty"`

	// epoch is the local edit counter at the time this field was last
	// written. Fields with epoch at or below the last generated push's
	// epoch were included in that push and may be rebound to its relay
	// hash on confirmation. Not serialized; restored dumps reset it.
	epoch int64
}

// Object is one live config document: the mutable field state for a
// (document-type, owner) pair plus the seqno/hash bookkeeping that tracks
// what the relay and the snapshot store have durably seen.
//
// An Object performs no I/O and is not safe for concurrent use; the cache
// registry serializes all access behind a per-key lock.
type Object struct {
	key    models.Key
	sealer crypto.SealerService
	log    *logger.Logger

	seqno  int64
	fields map[string]fieldState

	// known is the set of relay hashes already incorporated into state.
	// Merging a known hash again is a no-op, which is what makes merge
	// idempotent under at-least-once relay delivery.
	known map[string]struct{}

	// obsolete holds hashes superseded by newer state, eligible for
	// deletion from the relay. Drained by ClearObsolete once reported.
	obsolete map[string]struct{}

	// displaced holds hashes whose fields were overwritten by local edits.
	// They must stay live on the relay until the superseding content is
	// durably stored there, at which point they move to obsolete.
	displaced map[string]struct{}

	needsPush bool
	needsDump bool

	// editEpoch counts local mutations; lastPushEpoch and lastPushSeqno
	// identify the most recently generated push so a confirmation can be
	// matched to it.
	editEpoch     int64
	lastPushEpoch int64
	lastPushSeqno int64
}

// New creates a config object for key, either fresh (snapshot == nil) or
// restored from a dump blob previously produced by [Object.Dump] under the
// same identity secret. Returns [ErrUnableToCreateConfigObject] when the
// snapshot cannot be opened or parsed.
func New(key models.Key, sealer crypto.SealerService, snapshot []byte, log *logger.Logger) (*Object, error) {
	if sealer == nil {
		return nil, fmt.Errorf("%w: no sealer", ErrUnableToCreateConfigObject)
	}
	if log == nil {
		log = logger.Nop()
	}

	o := &Object{
		key:       key,
		sealer:    sealer,
		log:       log,
		fields:    make(map[string]fieldState),
		known:     make(map[string]struct{}),
		obsolete:  make(map[string]struct{}),
		displaced: make(map[string]struct{}),
	}

	if snapshot == nil {
		return o, nil
	}

	if err := o.restore(snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnableToCreateConfigObject, key, err)
	}
	return o, nil
}

// Key returns the (document-type, owner) identity of the object.
func (o *Object) Key() models.Key {
	return o.key
}

// Get returns the canonical encoding of a field's current value. The second
// return is false when the field is unset or tombstoned — the defined
// "absent" result.
func (o *Object) Get(field string) (json.RawMessage, bool) {
	fs, ok := o.fields[field]
	if !ok || fs.Deleted {
		return nil, false
	}
	return fs.Value, true
}

// GetInto unmarshals a field's current value into target. Returns false
// (and leaves target untouched) when the field is absent.
func (o *Object) GetInto(field string, target any) (bool, error) {
	raw, ok := o.Get(field)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("decode field %q: %w", field, err)
	}
	return true, nil
}

// Set writes value to field, marking the object push- and dump-dirty.
// Sequence bookkeeping is untouched until a push is generated. The value
// must be JSON-encodable; encoding/json's sorted-key map encoding keeps the
// canonical form deterministic.
func (o *Object) Set(field string, value any) error {
	if err := validateField(o.key.Type, field); err != nil {
		return err
	}

	canonical, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field %q: %w", field, err)
	}

	o.editEpoch++
	o.displace(field)
	o.fields[field] = fieldState{
		Value:  canonical,
		Digest: digestOf(field, canonical, false),
		epoch:  o.editEpoch,
	}
	o.needsPush = true
	o.needsDump = true
	return nil
}

// DeleteField writes a tombstone for field so the deletion propagates to
// other devices the same way a value does.
func (o *Object) DeleteField(field string) error {
	if err := validateField(o.key.Type, field); err != nil {
		return err
	}

	o.editEpoch++
	o.displace(field)
	o.fields[field] = fieldState{
		Digest:  digestOf(field, nil, true),
		Deleted: true,
		epoch:   o.editEpoch,
	}
	o.needsPush = true
	o.needsDump = true
	return nil
}

// NeedsPush reports whether in-memory state differs from what the relay has
// durably confirmed.
func (o *Object) NeedsPush() bool {
	return o.needsPush
}

// NeedsDump reports whether in-memory state differs from the last persisted
// snapshot.
func (o *Object) NeedsDump() bool {
	return o.needsDump
}

// Seqno returns the sequence number of the current confirmed state
// generation.
func (o *Object) Seqno() int64 {
	return o.seqno
}

// CurrentHashes returns the relay hashes currently backing this state,
// sorted for deterministic output.
func (o *Object) CurrentHashes() []string {
	set := o.currentHashSet()
	hashes := make([]string, 0, len(set))
	for h := range set {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	return hashes
}

// ObsoleteHashes returns the superseded hashes that should be removed from
// the relay, sorted for deterministic output.
func (o *Object) ObsoleteHashes() []string {
	hashes := make([]string, 0, len(o.obsolete))
	for h := range o.obsolete {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	return hashes
}

// ClearObsolete drops hashes from the obsolete set once the caller has
// issued (or scheduled) their deletion from the relay.
func (o *Object) ClearObsolete(hashes []string) {
	for _, h := range hashes {
		if _, ok := o.obsolete[h]; ok {
			delete(o.obsolete, h)
			o.needsDump = true
		}
	}
}

// CurrentFields returns a copy of every live field's canonical value,
// usable for projecting restored state into the local store.
func (o *Object) CurrentFields() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(o.fields))
	for name, fs := range o.fields {
		if fs.Deleted {
			continue
		}
		out[name] = append(json.RawMessage(nil), fs.Value...)
	}
	return out
}

// currentHashSet collects the distinct non-empty source hashes over all
// fields (tombstones included — a propagated delete is backed state too).
func (o *Object) currentHashSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, fs := range o.fields {
		if fs.SourceHash != "" {
			set[fs.SourceHash] = struct{}{}
		}
	}
	return set
}

// hasLocalSource reports whether any field is still backed by an
// unconfirmed local edit.
func (o *Object) hasLocalSource() bool {
	for _, fs := range o.fields {
		if fs.SourceHash == "" {
			return true
		}
	}
	return false
}

// displace remembers the relay hash a local edit is about to unback, so the
// stored message survives until a confirmed push carries the superseding
// content.
func (o *Object) displace(field string) {
	if prev, ok := o.fields[field]; ok && prev.SourceHash != "" {
		o.displaced[prev.SourceHash] = struct{}{}
	}
}

// retireDisplaced folds the displaced set into prev and resets it. Called
// only once the superseding content is durably relay-backed; a displaced
// hash still referenced by another field survives retireSuperseded.
func (o *Object) retireDisplaced(prev map[string]struct{}) {
	for h := range o.displaced {
		prev[h] = struct{}{}
	}
	o.displaced = make(map[string]struct{})
}

// retireSuperseded moves every hash of prev that is no longer referenced by
// the current state into the obsolete set.
func (o *Object) retireSuperseded(prev map[string]struct{}) {
	current := o.currentHashSet()
	for h := range prev {
		if _, still := current[h]; !still {
			o.obsolete[h] = struct{}{}
		}
	}
}
