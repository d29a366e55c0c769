// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import "errors"

// Sentinel errors returned by the engine. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrUnableToCreateConfigObject is returned when a config object cannot
	// be initialized: the snapshot blob fails to open or parse, or no
	// sealer could be derived. Fatal for that document's lifecycle; the
	// caller must not proceed with a nil object.
	ErrUnableToCreateConfigObject = errors.New("unable to create config object")

	// ErrNilConfigObject is returned when an operation is invoked against
	// a document that was never loaded (or was removed).
	ErrNilConfigObject = errors.New("nil config object")

	// ErrUnableToGeneratePushData is returned when serializing or sealing
	// the current state for a push fails. The object's state is unchanged,
	// so a retry is always safe.
	ErrUnableToGeneratePushData = errors.New("unable to generate push data")

	// ErrUnableToGenerateDump is returned when serializing or sealing the
	// snapshot blob fails. The dump-dirty flag is left set.
	ErrUnableToGenerateDump = errors.New("unable to generate dump")

	// ErrMalformedBatch is returned when the batch envelope itself is
	// structurally invalid (a nil payload or empty hash entry). The whole
	// call fails and no state is mutated, in contrast to per-message parse
	// failures, which are skipped.
	ErrMalformedBatch = errors.New("malformed merge batch")

	// ErrUnknownField is returned by Set when the field name does not
	// belong to the document type's schema.
	ErrUnknownField = errors.New("field not in document schema")
)
