// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package crypto

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/blake2b"

	"github.com/session-foundation/configsync/models"
)

// keyring is the private implementation of [KeyringService]. Secrets are
// held in memguard enclaves so the plaintext key material only exists in
// unlocked memory for the duration of a sealer derivation.
type keyring struct {
	mu      sync.RWMutex
	secrets map[models.Owner]*memguard.Enclave
}

// NewKeyring constructs an empty [KeyringService].
func NewKeyring() KeyringService {
	return &keyring{secrets: make(map[models.Owner]*memguard.Enclave)}
}

// Register implements [KeyringService]. memguard copies then wipes the
// caller's slice, so the secret never lingers in unmanaged memory.
func (k *keyring) Register(owner models.Owner, secret []byte) {
	enclave := memguard.NewEnclave(secret)

	k.mu.Lock()
	defer k.mu.Unlock()
	k.secrets[owner] = enclave
}

// Has implements [KeyringService].
func (k *keyring) Has(owner models.Owner) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.secrets[owner]
	return ok
}

// Remove implements [KeyringService].
func (k *keyring) Remove(owner models.Owner) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.secrets, owner)
}

// SealerFor implements [KeyringService]. The enclave is opened only long
// enough to derive the document key; the locked buffer is destroyed before
// returning.
func (k *keyring) SealerFor(key models.Key) (SealerService, error) {
	k.mu.RLock()
	enclave, ok := k.secrets[key.Owner]
	k.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOwner, key.Owner)
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open identity enclave: %w", err)
	}
	defer buf.Destroy()

	return NewSealer(buf.Bytes(), key)
}

// DeriveOwner computes the owner identity label for an identity secret:
// the Session-style "05" prefix followed by the hex of BLAKE2b-256 over the
// secret. Devices holding the same secret derive the same owner and
// therefore address the same swarm namespace.
func DeriveOwner(secret []byte) models.Owner {
	digest := blake2b.Sum256(secret)
	return models.Owner("05" + hex.EncodeToString(digest[:]))
}

// ParseSecretHex decodes a hex-encoded identity secret from configuration.
func ParseSecretHex(s string) ([]byte, error) {
	secret, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode identity secret: %w", err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("empty identity secret")
	}
	return secret, nil
}
