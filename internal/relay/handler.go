// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package relay implements the development relay server: an authenticated
// HTTP surface over an in-memory message log. Devices store sealed config
// pushes into per-owner namespaces, fetch everything stored since a
// watermark, delete superseded messages by hash, and subscribe to a
// websocket wakeup channel. The relay never inspects payloads; the message
// hash it assigns is the SHA-256 of the ciphertext.
package relay

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/utils"
	"github.com/session-foundation/configsync/models"
)

// Handler bundles the relay's HTTP endpoints with their shared state.
type Handler struct {
	messages *MessageLog
	hub      *notifyHub
	uuids    *utils.UUIDGenerator
	cfg      config.RelayConfig

	logger *logger.Logger
}

func NewHandler(cfg config.RelayConfig, log *logger.Logger) *Handler {
	log.Info().Msg("relay handler created")
	return &Handler{
		messages: NewMessageLog(),
		hub:      newNotifyHub(log),
		uuids:    utils.NewUUIDGenerator(),
		cfg:      cfg,
		logger:   log,
	}
}

// tokenRequest is the body of the dev token endpoint.
type tokenRequest struct {
	Owner models.Owner `json:"owner"`
}

// tokenResponse carries a signed bearer token back to the device.
type tokenResponse struct {
	Token string `json:"token"`
}

// issueToken signs a bearer token for the requested owner. The dev relay
// trusts the caller's claim to the identity; a production swarm would
// demand a signature from the identity key instead.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.issueToken").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Owner == "" {
		http.Error(w, "owner is required", http.StatusBadRequest)
		return
	}

	duration := h.cfg.TokenDuration
	if duration == 0 {
		duration = 24 * time.Hour
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, req.Owner, duration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.issueToken").Msg("error generating token")
		http.Error(w, "error generating token", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusOK)
}

// storeMessage accepts one sealed push for the authenticated owner's
// namespace and acknowledges with the assigned hash.
func (h *Handler) storeMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetOwnerFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.storeMessage").Msg("no owner was given")
		http.Error(w, "no owner was given", http.StatusBadRequest)
		return
	}

	typ, ok := namespaceFromRequest(r)
	if !ok {
		log.Error().Str("func", "*Handler.storeMessage").Msg("unknown namespace")
		http.Error(w, ErrUnknownNamespace.Error(), http.StatusBadRequest)
		return
	}

	var req models.StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.storeMessage").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if len(req.Payload) == 0 {
		http.Error(w, "payload is required", http.StatusBadRequest)
		return
	}

	resp := h.messages.Store(owner, typ, req.Payload)
	h.hub.wake(owner)

	log.Debug().
		Str("owner", string(owner)).
		Str("namespace", typ.String()).
		Str("hash", resp.Hash).
		Int64("seqno", req.Seqno).
		Msg("message stored")

	utils.WriteJSON(w, resp, http.StatusOK)
}

// retrieveMessages returns everything stored for the authenticated owner
// since the optional "since" watermark (Unix seconds).
func (h *Handler) retrieveMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetOwnerFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.retrieveMessages").Msg("no owner was given")
		http.Error(w, "no owner was given", http.StatusBadRequest)
		return
	}

	since, err := sinceFromRequest(r)
	if err != nil {
		http.Error(w, "invalid since parameter", http.StatusBadRequest)
		return
	}

	messages := h.messages.Retrieve(owner, since)
	utils.WriteJSON(w, models.RetrieveResponse{Messages: messages, Length: len(messages)}, http.StatusOK)
}

// deleteMessages removes the named hashes from the authenticated owner's
// namespace.
func (h *Handler) deleteMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetOwnerFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteMessages").Msg("no owner was given")
		http.Error(w, "no owner was given", http.StatusBadRequest)
		return
	}

	var req models.DeleteMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteMessages").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deleted := h.messages.Delete(owner, req.Hashes)
	log.Debug().Str("owner", string(owner)).Int("deleted", deleted).Msg("messages deleted")

	utils.WriteJSON(w, map[string]int{"deleted": deleted}, http.StatusOK)
}

var upgrader = websocket.Upgrader{
	// the dev relay accepts any origin
	CheckOrigin: func(*http.Request) bool { return true },
}

// notify upgrades the connection to a websocket and keeps it registered
// until the peer goes away. The relay writes an empty JSON frame whenever
// a message arrives for the owner.
func (h *Handler) notify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetOwnerFromContext(ctx)
	if !found {
		http.Error(w, "no owner was given", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.notify").Msg("websocket upgrade failed")
		return
	}

	h.hub.add(owner, conn)
	log.Debug().Str("owner", string(owner)).Msg("notify subscriber connected")

	// Drain control frames until the peer disconnects.
	go func() {
		defer h.hub.remove(owner, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
