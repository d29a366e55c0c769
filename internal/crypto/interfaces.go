// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package crypto provides the cryptographic building blocks consumed by the
// configsync codec: per-document sealing of push payloads and dump blobs,
// and a keyring that holds long-lived identity secrets in locked memory.
//
// The engine treats these operations as black boxes. The only property the
// codec relies on beyond confidentiality is determinism: sealing the same
// plaintext under the same document key twice must produce byte-identical
// output, because push generation is defined as a pure function of state.
package crypto

import "github.com/session-foundation/configsync/models"

// SealerService seals and opens the byte blobs a single config object
// exchanges with the relay and the snapshot store. A sealer is bound to one
// (document-type, owner) key; blobs sealed for one document cannot be
// opened by another document's sealer.
type SealerService interface {
	// Seal encrypts plain under the document key. The nonce is derived
	// from the plaintext content, so Seal is deterministic: equal input
	// yields byte-identical output.
	Seal(plain []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Returns an error if the blob
	// is truncated, carries an unsupported version, or fails
	// authentication.
	Open(sealed []byte) ([]byte, error)
}

// KeyringService stores identity secrets and derives per-document sealers
// from them. Secrets live in locked memory enclaves between uses.
type KeyringService interface {
	// Register stores the secret for owner. The caller's slice is wiped as
	// a side effect of enclave construction and must not be reused.
	Register(owner models.Owner, secret []byte)

	// Has reports whether a secret is registered for owner.
	Has(owner models.Owner) bool

	// Remove discards the secret for owner (account reset, group
	// departure).
	Remove(owner models.Owner)

	// SealerFor derives the sealer for the given document key from the
	// owner's registered secret. Returns [ErrUnknownOwner] when no secret
	// is registered.
	SealerFor(key models.Key) (SealerService, error)
}
