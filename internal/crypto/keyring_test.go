// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/session-foundation/configsync/models"
)

// TestKeyring_SealerFor_RoundTrip verifies that a sealer derived through
// the keyring interoperates with one derived directly from the same secret.
func TestKeyring_SealerFor_RoundTrip(t *testing.T) {
	secret := []byte("shared-device-secret")
	owner := DeriveOwner(secret)
	key := models.Key{Type: models.Contacts, Owner: owner}

	direct, err := NewSealer(secret, key)
	require.NoError(t, err)

	kr := NewKeyring()
	// Register wipes its input, so hand it a copy.
	kr.Register(owner, append([]byte(nil), secret...))
	require.True(t, kr.Has(owner))

	viaKeyring, err := kr.SealerFor(key)
	require.NoError(t, err)

	sealed, err := direct.Seal([]byte("contact entry"))
	require.NoError(t, err)

	opened, err := viaKeyring.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("contact entry"), opened)
}

// TestKeyring_SealerFor_UnknownOwner verifies the sentinel error.
func TestKeyring_SealerFor_UnknownOwner(t *testing.T) {
	kr := NewKeyring()

	_, err := kr.SealerFor(models.Key{Type: models.UserProfile, Owner: "05aa"})
	assert.ErrorIs(t, err, ErrUnknownOwner)
}

// TestKeyring_Remove verifies that removal forgets the secret.
func TestKeyring_Remove(t *testing.T) {
	kr := NewKeyring()
	kr.Register("05aa", []byte("secret"))
	require.True(t, kr.Has("05aa"))

	kr.Remove("05aa")
	assert.False(t, kr.Has("05aa"))

	_, err := kr.SealerFor(models.Key{Type: models.UserProfile, Owner: "05aa"})
	assert.ErrorIs(t, err, ErrUnknownOwner)
}

// TestDeriveOwner_StableAcrossDevices verifies both devices holding the same
// secret derive the same owner, and different secrets diverge.
func TestDeriveOwner_StableAcrossDevices(t *testing.T) {
	a := DeriveOwner([]byte("secret-1"))
	b := DeriveOwner([]byte("secret-1"))
	c := DeriveOwner([]byte("secret-2"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, string(a), 2+64)
}

// TestParseSecretHex covers valid, invalid, and empty inputs.
func TestParseSecretHex(t *testing.T) {
	secret, err := ParseSecretHex("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, secret)

	_, err = ParseSecretHex("zz")
	assert.Error(t, err)

	_, err = ParseSecretHex("")
	assert.Error(t, err)
}
