// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package adapter

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/relay"
	"github.com/session-foundation/configsync/models"
)

const testOwner = models.Owner("05adaptertestowner")

func newTestAdapter(t *testing.T) RelayAdapter {
	t.Helper()

	handler := relay.NewHandler(config.RelayConfig{
		TokenSignKey:  "adapter-test-sign-key",
		TokenIssuer:   "configsync-relay",
		TokenDuration: time.Hour,
	}, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	a, err := NewHTTPRelayAdapter(config.Relay{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "already normalized", in: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "bare host gets scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", in: "https://relay.example.org/", want: "https://relay.example.org"},
		{name: "surrounding spaces", in: "  http://relay.example.org  ", want: "http://relay.example.org"},
		{name: "empty", in: "", wantErr: true},
		{name: "spaces only", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPRelayAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRelayAdapter(config.Relay{HTTPAddress: ""}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPRelayAdapter_PushFetchDelete(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	payload, err := json.Marshal(map[string]string{"name": "Alice"})
	require.NoError(t, err)

	stored, err := a.SendPush(ctx, testOwner, models.PendingPush{
		Type:    models.UserProfile,
		Payload: payload,
		Seqno:   1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.Hash)

	msgs, err := a.FetchIncoming(ctx, testOwner, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, stored.Hash, msgs[0].Hash)
	assert.Equal(t, models.UserProfile, msgs[0].Type)
	assert.Equal(t, payload, msgs[0].Payload)

	err = a.DeleteMessages(ctx, testOwner, []string{stored.Hash})
	require.NoError(t, err)

	msgs, err = a.FetchIncoming(ctx, testOwner, 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestHTTPRelayAdapter_IdempotentPush(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	push := models.PendingPush{
		Type:    models.Contacts,
		Payload: []byte(`{"contact:05bb":{"name":"Bob"}}`),
		Seqno:   3,
	}

	first, err := a.SendPush(ctx, testOwner, push)
	require.NoError(t, err)
	second, err := a.SendPush(ctx, testOwner, push)
	require.NoError(t, err)
	assert.Equal(t, first.Hash, second.Hash)

	msgs, err := a.FetchIncoming(ctx, testOwner, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestHTTPRelayAdapter_DeleteNothing(t *testing.T) {
	a := newTestAdapter(t)

	// No round trip at all for an empty hash list.
	err := a.DeleteMessages(context.Background(), testOwner, nil)
	assert.NoError(t, err)
}

func TestHTTPRelayAdapter_SubscribeWakesOnStore(t *testing.T) {
	a := newTestAdapter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wake, err := a.Subscribe(ctx, testOwner)
	require.NoError(t, err)

	_, err = a.SendPush(ctx, testOwner, models.PendingPush{
		Type:    models.UserProfile,
		Payload: []byte(`{"name":"Alice"}`),
		Seqno:   1,
	})
	require.NoError(t, err)

	select {
	case _, ok := <-wake:
		assert.True(t, ok, "wake channel closed before delivering a signal")
	case <-time.After(2 * time.Second):
		t.Fatal("no wakeup received after store")
	}
}
