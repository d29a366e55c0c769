// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

func newTestRelay(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.RelayConfig{
		ListenAddress:  "127.0.0.1:0",
		TokenSignKey:   "test-sign-key",
		TokenIssuer:    "test-relay",
		TokenDuration:  time.Hour,
		RequestTimeout: 5 * time.Second,
	}
	srv := httptest.NewServer(NewHandler(cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func fetchToken(t *testing.T, srv *httptest.Server, owner models.Owner) string {
	t.Helper()
	body, err := json.Marshal(tokenRequest{Owner: owner})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/relay/token", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tr tokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tr))
	require.NotEmpty(t, tr.Token)
	return tr.Token
}

func authedRequest(t *testing.T, method, url, token string, body any) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRelay_IssueToken_MissingOwner(t *testing.T) {
	srv := newTestRelay(t)

	resp, err := http.Post(srv.URL+"/api/relay/token", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRelay_Auth_Rejections(t *testing.T) {
	srv := newTestRelay(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "garbage"},
		{"bad token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/relay/messages", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRelay_StoreRetrieveDelete(t *testing.T) {
	srv := newTestRelay(t)
	token := fetchToken(t, srv, "05aa")

	// store
	store := authedRequest(t, http.MethodPost, srv.URL+"/api/relay/messages/contacts", token,
		models.StoreRequest{Payload: []byte("sealed blob"), Seqno: 1})
	resp, err := http.DefaultClient.Do(store)
	require.NoError(t, err)
	var stored models.StoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, stored.Hash)

	// retrieve
	get := authedRequest(t, http.MethodGet, srv.URL+"/api/relay/messages", token, nil)
	resp, err = http.DefaultClient.Do(get)
	require.NoError(t, err)
	var retrieved models.RetrieveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&retrieved))
	resp.Body.Close()
	require.Equal(t, 1, retrieved.Length)
	assert.Equal(t, stored.Hash, retrieved.Messages[0].Hash)
	assert.Equal(t, models.Contacts, retrieved.Messages[0].Type)
	assert.Equal(t, []byte("sealed blob"), retrieved.Messages[0].Payload)

	// delete
	del := authedRequest(t, http.MethodPost, srv.URL+"/api/relay/messages/delete", token,
		models.DeleteMessagesRequest{Hashes: []string{stored.Hash}, Length: 1})
	resp, err = http.DefaultClient.Do(del)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// retrieve again: empty
	get = authedRequest(t, http.MethodGet, srv.URL+"/api/relay/messages", token, nil)
	resp, err = http.DefaultClient.Do(get)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&retrieved))
	resp.Body.Close()
	assert.Zero(t, retrieved.Length)
}

func TestRelay_Store_UnknownNamespace(t *testing.T) {
	srv := newTestRelay(t)
	token := fetchToken(t, srv, "05aa")

	req := authedRequest(t, http.MethodPost, srv.URL+"/api/relay/messages/mailbox", token,
		models.StoreRequest{Payload: []byte("x")})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRelay_OwnersAreIsolated(t *testing.T) {
	srv := newTestRelay(t)
	tokenA := fetchToken(t, srv, "05aa")
	tokenB := fetchToken(t, srv, "05bb")

	store := authedRequest(t, http.MethodPost, srv.URL+"/api/relay/messages/user-profile", tokenA,
		models.StoreRequest{Payload: []byte("for A")})
	resp, err := http.DefaultClient.Do(store)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	get := authedRequest(t, http.MethodGet, srv.URL+"/api/relay/messages", tokenB, nil)
	resp, err = http.DefaultClient.Do(get)
	require.NoError(t, err)
	var retrieved models.RetrieveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&retrieved))
	resp.Body.Close()
	assert.Zero(t, retrieved.Length, "owner B must not see owner A's messages")
}
