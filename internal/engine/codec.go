// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Wire format revisions. Both envelopes are versioned independently so the
// push layout can evolve without invalidating persisted dumps.
const (
	pushWireVersion = 1
	dumpWireVersion = 1
)

// pushWire is the plaintext layout of a push payload: the full current
// field state plus the seqno the push claims. encoding/json emits map keys
// in sorted order, which together with the content-derived seal nonce makes
// the sealed payload a pure function of state.
type pushWire struct {
	V      int                  `json:"v"`
	Seqno  int64                `json:"seqno"`
	Fields map[string]wireField `json:"fields"`
}

// wireField carries one field across the relay. Digests are never trusted
// from the wire; the merge recomputes them from content.
type wireField struct {
	Value   json.RawMessage `json:"value,omitempty"`
	Deleted bool            `json:"deleted,omitempty"`
}

// dumpWire is the plaintext layout of a persisted snapshot: field state
// including source-hash bookkeeping plus the incorporated, obsolete and
// displaced hash sets. Enough to restore the object bit-for-bit as far as
// observable behavior goes.
type dumpWire struct {
	V         int                  `json:"v"`
	Seqno     int64                `json:"seqno"`
	Fields    map[string]dumpField `json:"fields"`
	Known     []string             `json:"known"`
	Obsolete  []string             `json:"obsolete"`
	Displaced []string             `json:"displaced,omitempty"`
}

type dumpField struct {
	Value      json.RawMessage `json:"value,omitempty"`
	Digest     string          `json:"digest"`
	Deleted    bool            `json:"deleted,omitempty"`
	SourceHash string          `json:"source_hash,omitempty"`
}

// Push deterministically serializes the current uncommitted state plus the
// next sequence number into a sealed payload. Calling Push twice without an
// intervening mutation returns byte-identical output; devices independently
// producing a push for the same logical state therefore converge after
// exchange. Push mutates only the bookkeeping that matches a later
// confirmation to this generation — observable state and flags are
// untouched.
func (o *Object) Push() ([]byte, int64, error) {
	seqno := o.seqno + 1

	wire := pushWire{
		V:      pushWireVersion,
		Seqno:  seqno,
		Fields: make(map[string]wireField, len(o.fields)),
	}
	for name, fs := range o.fields {
		wire.Fields[name] = wireField{Value: fs.Value, Deleted: fs.Deleted}
	}

	plain, err := json.Marshal(wire)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: encode: %v", ErrUnableToGeneratePushData, err)
	}

	payload, err := o.sealer.Seal(plain)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: seal: %v", ErrUnableToGeneratePushData, err)
	}

	o.lastPushSeqno = seqno
	o.lastPushEpoch = o.editEpoch

	o.log.Debug().
		Stringer("key", o.key).
		Int64("seqno", seqno).
		Int("fields", len(wire.Fields)).
		Msg("generated push data")

	return payload, seqno, nil
}

// ConfirmPushed records that the push identified by seqno is durably stored
// on the relay under relayHash. Every field included in that push is
// rebound to the new hash; hashes this supersedes move to the obsolete set,
// and the dump-dirty flag is raised because durable-hash bookkeeping
// changed. Confirming an unknown or stale seqno is a defensive no-op —
// relay redelivery and confirm races legitimately produce those.
func (o *Object) ConfirmPushed(seqno int64, relayHash string) {
	if seqno != o.lastPushSeqno || seqno <= o.seqno || relayHash == "" {
		o.log.Debug().
			Stringer("key", o.key).
			Int64("seqno", seqno).
			Msg("ignoring stale push confirmation")
		return
	}

	prev := o.currentHashSet()
	// The confirmed push captured every field's content as of its
	// generation, so hashes displaced by earlier local edits are durably
	// superseded now.
	o.retireDisplaced(prev)

	o.seqno = seqno
	for name, fs := range o.fields {
		if fs.epoch <= o.lastPushEpoch {
			fs.SourceHash = relayHash
			o.fields[name] = fs
		}
	}
	o.known[relayHash] = struct{}{}

	o.retireSuperseded(prev)
	o.needsPush = o.hasLocalSource()
	o.needsDump = true
}

// Dump serializes the full object state — fields, hash bookkeeping, and the
// incorporated set — into a sealed snapshot blob and clears the dump-dirty
// flag. The blob round-trips through [New] without external metadata.
func (o *Object) Dump() ([]byte, error) {
	wire := dumpWire{
		V:         dumpWireVersion,
		Seqno:     o.seqno,
		Fields:    make(map[string]dumpField, len(o.fields)),
		Known:     setToSorted(o.known),
		Obsolete:  setToSorted(o.obsolete),
		Displaced: setToSorted(o.displaced),
	}
	for name, fs := range o.fields {
		wire.Fields[name] = dumpField{
			Value:      fs.Value,
			Digest:     fs.Digest,
			Deleted:    fs.Deleted,
			SourceHash: fs.SourceHash,
		}
	}

	plain, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrUnableToGenerateDump, err)
	}
	blob, err := o.sealer.Seal(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: seal: %v", ErrUnableToGenerateDump, err)
	}

	o.needsDump = false
	return blob, nil
}

// restore rebuilds object state from a dump blob. Outstanding push
// bookkeeping does not survive a restart: a confirmation for a
// pre-restart push arrives with an unknown seqno and is ignored, and the
// next collection cycle simply regenerates the push.
func (o *Object) restore(snapshot []byte) error {
	plain, err := o.sealer.Open(snapshot)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}

	var wire dumpWire
	if err := json.Unmarshal(plain, &wire); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if wire.V != dumpWireVersion {
		return fmt.Errorf("unsupported dump version %d", wire.V)
	}

	o.seqno = wire.Seqno
	o.fields = make(map[string]fieldState, len(wire.Fields))
	for name, df := range wire.Fields {
		o.fields[name] = fieldState{
			Value:      df.Value,
			Digest:     df.Digest,
			Deleted:    df.Deleted,
			SourceHash: df.SourceHash,
		}
	}
	o.known = sortedToSet(wire.Known)
	o.obsolete = sortedToSet(wire.Obsolete)
	o.displaced = sortedToSet(wire.Displaced)

	o.needsPush = o.hasLocalSource()
	o.needsDump = false
	return nil
}

func setToSorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

func sortedToSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, h := range list {
		set[h] = struct{}{}
	}
	return set
}
