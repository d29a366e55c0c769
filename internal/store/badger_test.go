// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

func newInMemoryBadger(t *testing.T) SnapshotStore {
	t.Helper()
	s, err := NewBadgerStore("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStore_SaveLoad(t *testing.T) {
	s := newInMemoryBadger(t)
	ctx := context.Background()

	blob := []byte("sealed dump")
	require.NoError(t, s.Save(ctx, testKey, blob, 1700000000))

	got, appliedAt, err := s.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
	assert.Equal(t, int64(1700000000), appliedAt)
}

func TestBadgerStore_SaveOverwrites(t *testing.T) {
	s := newInMemoryBadger(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testKey, []byte("old"), 1))
	require.NoError(t, s.Save(ctx, testKey, []byte("new"), 2))

	got, appliedAt, err := s.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
	assert.Equal(t, int64(2), appliedAt)
}

func TestBadgerStore_LoadMissing(t *testing.T) {
	s := newInMemoryBadger(t)

	_, _, err := s.Load(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestBadgerStore_Delete(t *testing.T) {
	s := newInMemoryBadger(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testKey, []byte("x"), 1))
	require.NoError(t, s.Delete(ctx, testKey))

	_, _, err := s.Load(ctx, testKey)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	// deleting a missing row is not an error
	assert.NoError(t, s.Delete(ctx, testKey))
}

func TestBadgerStore_List(t *testing.T) {
	s := newInMemoryBadger(t)
	ctx := context.Background()

	for _, typ := range models.AllDocumentTypes() {
		key := models.Key{Type: typ, Owner: "05aa"}
		require.NoError(t, s.Save(ctx, key, []byte("x"), 1))
	}
	require.NoError(t, s.Save(ctx, models.Key{Type: models.Contacts, Owner: "05bb"}, []byte("y"), 1))

	keys, err := s.List(ctx, "05aa")
	require.NoError(t, err)
	assert.Len(t, keys, len(models.AllDocumentTypes()))
	for _, k := range keys {
		assert.Equal(t, models.Owner("05aa"), k.Owner)
	}
}
