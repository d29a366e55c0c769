// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/session-foundation/configsync/models"
)

// sealVersion is the leading byte of every sealed blob. Bump it when the
// layout after it changes.
const sealVersion = 0x01

// sealer is the private implementation of [SealerService]. It holds the
// derived 256-bit document key and a ready AEAD instance.
type sealer struct {
	docKey []byte
	aead   cipher.AEAD
}

// NewSealer derives the document key for key from the owner's identity
// secret and returns a [SealerService] bound to that document.
//
// Key derivation is keyed BLAKE2b-256 over a domain-separation label plus
// the document identity, so sibling documents of the same owner never share
// keys:
//
//	docKey = BLAKE2b-256(key=secret, "configsync.doc" ‖ type ‖ "." ‖ owner)
func NewSealer(secret []byte, key models.Key) (SealerService, error) {
	h, err := blake2b.New256(secret)
	if err != nil {
		return nil, fmt.Errorf("derive document key: %w", err)
	}
	h.Write([]byte("configsync.doc"))
	h.Write([]byte(key.Type.String()))
	h.Write([]byte("."))
	h.Write([]byte(key.Owner))
	docKey := h.Sum(nil)

	block, err := aes.NewCipher(docKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &sealer{docKey: docKey, aead: aead}, nil
}

// Seal implements [SealerService]. The nonce is the first 12 bytes of
// BLAKE2b(key=docKey, plain), making the whole operation a pure function of
// the plaintext: identical state serializations seal to identical blobs,
// which push determinism requires. Layout: version ‖ nonce ‖ ciphertext.
func (s *sealer) Seal(plain []byte) ([]byte, error) {
	nonce, err := s.deriveNonce(plain)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+len(nonce)+len(plain)+s.aead.Overhead())
	out = append(out, sealVersion)
	out = append(out, nonce...)
	out = s.aead.Seal(out, nonce, plain, nil)
	return out, nil
}

// Open implements [SealerService]. It validates the version byte, splits
// out the nonce, and decrypts the remainder. An authentication failure
// means the blob was sealed for a different document or corrupted in
// transit; both reject the whole blob.
func (s *sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < 1+s.aead.NonceSize() {
		return nil, ErrSealedBlobTooShort
	}
	if sealed[0] != sealVersion {
		return nil, fmt.Errorf("%w: %#x", ErrUnsupportedSealVersion, sealed[0])
	}

	nonce, ciphertext := sealed[1:1+s.aead.NonceSize()], sealed[1+s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed blob: %w", err)
	}
	return plain, nil
}

// deriveNonce computes the content-derived GCM nonce. A nonce collision
// requires an identical plaintext, which produces an identical ciphertext,
// so the reuse is harmless.
func (s *sealer) deriveNonce(plain []byte) ([]byte, error) {
	h, err := blake2b.New256(s.docKey)
	if err != nil {
		return nil, fmt.Errorf("derive nonce: %w", err)
	}
	h.Write(plain)
	return h.Sum(nil)[:s.aead.NonceSize()], nil
}
