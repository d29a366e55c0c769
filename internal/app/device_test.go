// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package app

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/session-foundation/configsync/internal/adapter"
	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/engine"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestDevice(t *testing.T, relay adapter.RelayAdapter) *Device {
	t.Helper()

	cfg := &config.DeviceConfig{
		App:     config.App{IdentitySecretHex: hex.EncodeToString(testSecret)},
		Storage: config.Storage{Backend: "badger"},
	}

	device, err := NewDevice(context.Background(), cfg, relay, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = device.Close() })

	return device
}

func TestNewDevice_BadSecret(t *testing.T) {
	cfg := &config.DeviceConfig{
		App:     config.App{IdentitySecretHex: "not hex"},
		Storage: config.Storage{Backend: "badger"},
	}
	_, err := NewDevice(context.Background(), cfg, adapter.NewLoopbackRelay(), logger.Nop())
	assert.Error(t, err)
}

func TestNewDevice_OwnerMismatch(t *testing.T) {
	cfg := &config.DeviceConfig{
		App: config.App{
			Owner:             "05ffffffffffffffff",
			IdentitySecretHex: hex.EncodeToString(testSecret),
		},
		Storage: config.Storage{Backend: "badger"},
	}
	_, err := NewDevice(context.Background(), cfg, adapter.NewLoopbackRelay(), logger.Nop())
	assert.Error(t, err)
}

func TestDevice_TwoDevicesConverge(t *testing.T) {
	relay := adapter.NewLoopbackRelay()
	a := newTestDevice(t, relay)
	b := newTestDevice(t, relay)
	require.Equal(t, a.Owner, b.Owner)

	ctx := context.Background()
	owner := a.Owner
	profile := models.Key{Type: models.UserProfile, Owner: owner}
	contacts := models.Key{Type: models.Contacts, Owner: owner}

	require.NoError(t, a.Coordinator.SetField(ctx, profile, engine.FieldDisplayName, "Alice"))
	require.NoError(t, b.Coordinator.SetField(ctx, contacts, "contact:05bb", map[string]any{"name": "Bob"}))

	// Two passes per device: first propagates the pushes, second folds in
	// what the other device pushed.
	for pass := 0; pass < 2; pass++ {
		require.NoError(t, a.Services.SyncService.FullSync(ctx, owner))
		require.NoError(t, b.Services.SyncService.FullSync(ctx, owner))
	}

	var name string
	found, err := b.Coordinator.GetField(ctx, profile, engine.FieldDisplayName, &name)
	require.NoError(t, err)
	require.True(t, found, "device B should have device A's profile edit")
	assert.Equal(t, "Alice", name)

	var contact struct {
		Name string `json:"name"`
	}
	found, err = a.Coordinator.GetField(ctx, contacts, "contact:05bb", &contact)
	require.NoError(t, err)
	require.True(t, found, "device A should have device B's contact")
	assert.Equal(t, "Bob", contact.Name)

	for _, typ := range models.AllDocumentTypes() {
		key := models.Key{Type: typ, Owner: owner}
		fieldsA, err := a.Coordinator.CurrentFields(ctx, key)
		require.NoError(t, err)
		fieldsB, err := b.Coordinator.CurrentFields(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, fieldsA, fieldsB, "diverged on %s", key)
	}
}

func TestDevice_ConflictingEditsConverge(t *testing.T) {
	relay := adapter.NewLoopbackRelay()
	a := newTestDevice(t, relay)
	b := newTestDevice(t, relay)

	ctx := context.Background()
	owner := a.Owner
	profile := models.Key{Type: models.UserProfile, Owner: owner}

	require.NoError(t, a.Coordinator.SetField(ctx, profile, engine.FieldDisplayName, "from device A"))
	require.NoError(t, b.Coordinator.SetField(ctx, profile, engine.FieldDisplayName, "from device B"))

	for pass := 0; pass < 3; pass++ {
		require.NoError(t, a.Services.SyncService.FullSync(ctx, owner))
		require.NoError(t, b.Services.SyncService.FullSync(ctx, owner))
	}

	var nameA, nameB string
	_, err := a.Coordinator.GetField(ctx, profile, engine.FieldDisplayName, &nameA)
	require.NoError(t, err)
	_, err = b.Coordinator.GetField(ctx, profile, engine.FieldDisplayName, &nameB)
	require.NoError(t, err)

	assert.Equal(t, nameA, nameB, "both devices must settle on the same winner")
	assert.Contains(t, []string{"from device A", "from device B"}, nameA)
}

func TestDevice_RunAndClose(t *testing.T) {
	relay := adapter.NewLoopbackRelay()
	device := newTestDevice(t, relay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	device.Run(ctx, 0)
	require.NoError(t, device.Close())
}
