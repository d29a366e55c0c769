// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/utils"
	"github.com/session-foundation/configsync/models"
)

type httpRelayAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP/REST implementation of
// [RelayAdapter] against the dev relay. It normalises and validates the
// base URL from cfg.HTTPAddress and configures the underlying HTTP client
// with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRelayAdapter(cfg config.Relay, log *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid relay http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpRelayAdapter{
		client:  client,
		baseURL: baseURL,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ensureToken fetches a bearer token for owner on first use and caches it.
// A 401 on a later call clears the cache so the next request re-issues.
func (h *httpRelayAdapter) ensureToken(ctx context.Context, owner models.Owner) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.token != "" {
		return h.token, nil
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]models.Owner{"owner": owner}).
		SetResult(&tokenResp).
		Post("/api/relay/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("relay returned empty token")
	}

	h.token = tokenResp.Token
	return h.token, nil
}

func (h *httpRelayAdapter) invalidateToken() {
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()
}

func (h *httpRelayAdapter) SendPush(ctx context.Context, owner models.Owner, push models.PendingPush) (models.StoreResponse, error) {
	token, err := h.ensureToken(ctx, owner)
	if err != nil {
		return models.StoreResponse{}, err
	}

	var stored models.StoreResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(models.StoreRequest{Payload: push.Payload, Seqno: push.Seqno}).
		SetResult(&stored).
		Post("/api/relay/messages/" + push.Type.String())
	if err != nil {
		return models.StoreResponse{}, fmt.Errorf("send push request: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		h.invalidateToken()
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoreResponse{}, err
	}
	if stored.Hash == "" {
		return models.StoreResponse{}, fmt.Errorf("relay acknowledged push without a hash")
	}

	h.logger.Debug().
		Str("func", "httpRelayAdapter.SendPush").
		Str("namespace", push.Type.String()).
		Str("hash", stored.Hash).
		Msg("push stored")

	return stored, nil
}

func (h *httpRelayAdapter) FetchIncoming(ctx context.Context, owner models.Owner, since int64) ([]models.IncomingMessage, error) {
	token, err := h.ensureToken(ctx, owner)
	if err != nil {
		return nil, err
	}

	var retrieved models.RetrieveResponse
	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&retrieved)
	if since > 0 {
		req.SetQueryParam("since", fmt.Sprintf("%d", since))
	}

	resp, err := req.Get("/api/relay/messages")
	if err != nil {
		return nil, fmt.Errorf("fetch incoming request: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		h.invalidateToken()
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return retrieved.Messages, nil
}

func (h *httpRelayAdapter) DeleteMessages(ctx context.Context, owner models.Owner, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}

	token, err := h.ensureToken(ctx, owner)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(models.DeleteMessagesRequest{Hashes: hashes, Length: len(hashes)}).
		Post("/api/relay/messages/delete")
	if err != nil {
		return fmt.Errorf("delete messages request: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		h.invalidateToken()
	}
	return mapHTTPError(resp)
}

// Subscribe dials the relay's websocket notify endpoint. Every inbound
// frame becomes a wakeup signal; the channel closes when the connection
// drops or ctx is cancelled.
func (h *httpRelayAdapter) Subscribe(ctx context.Context, owner models.Owner) (<-chan struct{}, error) {
	token, err := h.ensureToken(ctx, owner)
	if err != nil {
		return nil, err
	}

	wsURL := strings.Replace(h.baseURL, "http", "ws", 1) + "/api/relay/notify"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("dial notify websocket: %w", err)
	}

	wake := make(chan struct{}, 1)
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer close(wake)
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			select {
			case wake <- struct{}{}:
			default:
				// a wakeup is already pending
			}
		}
	}()

	return wake, nil
}
