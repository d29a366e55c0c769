// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/session-foundation/configsync/internal/utils"
	"github.com/session-foundation/configsync/models"
)

func TestMessageLog_StoreAssignsContentHash(t *testing.T) {
	log := NewMessageLog()
	payload := []byte("sealed push")

	resp := log.Store("05aa", models.UserProfile, payload)

	assert.Equal(t, utils.HashPayload(payload), resp.Hash)
	assert.NotZero(t, resp.AcceptedAt)
	assert.Equal(t, 1, log.Count("05aa"))
}

func TestMessageLog_StoreIdempotent(t *testing.T) {
	log := NewMessageLog()
	payload := []byte("sealed push")

	first := log.Store("05aa", models.UserProfile, payload)
	second := log.Store("05aa", models.UserProfile, payload)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, log.Count("05aa"))
}

func TestMessageLog_RetrieveIsolatesOwners(t *testing.T) {
	log := NewMessageLog()
	log.Store("05aa", models.UserProfile, []byte("for aa"))
	log.Store("05bb", models.Contacts, []byte("for bb"))

	msgs := log.Retrieve("05aa", 0)
	require.Len(t, msgs, 1)
	assert.Equal(t, []byte("for aa"), msgs[0].Payload)
	assert.Equal(t, models.UserProfile, msgs[0].Type)
}

func TestMessageLog_RetrievePreservesArrivalOrder(t *testing.T) {
	log := NewMessageLog()
	log.Store("05aa", models.UserProfile, []byte("first"))
	log.Store("05aa", models.Contacts, []byte("second"))
	log.Store("05aa", models.UserGroups, []byte("third"))

	msgs := log.Retrieve("05aa", 0)
	require.Len(t, msgs, 3)
	assert.Equal(t, []byte("first"), msgs[0].Payload)
	assert.Equal(t, []byte("second"), msgs[1].Payload)
	assert.Equal(t, []byte("third"), msgs[2].Payload)
}

func TestMessageLog_RetrieveIncludesBoundaryTimestamp(t *testing.T) {
	log := NewMessageLog()
	first := log.Store("05aa", models.UserProfile, []byte("first"))
	second := log.Store("05aa", models.Contacts, []byte("second"))

	// A cursor derived from an earlier fetch sits on the boundary
	// timestamp; both messages share it and both must come back.
	require.GreaterOrEqual(t, second.AcceptedAt, first.AcceptedAt)
	msgs := log.Retrieve("05aa", first.AcceptedAt)
	assert.Len(t, msgs, 2)
}

func TestMessageLog_TimestampsNeverRegress(t *testing.T) {
	log := NewMessageLog()
	log.lastSentAt = 1<<62 - 1 // simulate a wall clock that jumped backwards

	resp := log.Store("05aa", models.UserProfile, []byte("payload"))
	assert.Equal(t, int64(1<<62-1), resp.AcceptedAt)
}

func TestMessageLog_Delete(t *testing.T) {
	log := NewMessageLog()
	keep := log.Store("05aa", models.UserProfile, []byte("keep"))
	drop := log.Store("05aa", models.UserProfile, []byte("drop"))

	deleted := log.Delete("05aa", []string{drop.Hash, "missing"})
	assert.Equal(t, 1, deleted)

	msgs := log.Retrieve("05aa", 0)
	require.Len(t, msgs, 1)
	assert.Equal(t, keep.Hash, msgs[0].Hash)
}

func TestMessageLog_DeleteWrongOwner(t *testing.T) {
	log := NewMessageLog()
	resp := log.Store("05aa", models.UserProfile, []byte("payload"))

	deleted := log.Delete("05bb", []string{resp.Hash})
	assert.Zero(t, deleted)
	assert.Equal(t, 1, log.Count("05aa"))
}
