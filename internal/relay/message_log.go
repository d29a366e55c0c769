// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import (
	"sync"
	"time"

	"github.com/session-foundation/configsync/internal/utils"
	"github.com/session-foundation/configsync/models"
)

// storedMessage is one relay entry. The relay never looks inside Payload;
// it stores ciphertext, assigns a content hash and a receive timestamp.
type storedMessage struct {
	payload []byte
	hash    string
	sentAt  int64
	docType models.DocumentType
}

// MessageLog is the relay's in-memory message store, an append-ordered
// multimap over (owner, document namespace). Storing the same payload
// twice is idempotent: the content hash is the message identity.
type MessageLog struct {
	mu      sync.RWMutex
	byOwner map[models.Owner][]*storedMessage
	byHash  map[string]*storedMessage

	// lastSentAt clamps assigned timestamps to be non-decreasing in store
	// order, so a since-cursor derived from a fetched message can never
	// skip one stored later.
	lastSentAt int64
}

func NewMessageLog() *MessageLog {
	return &MessageLog{
		byOwner: make(map[models.Owner][]*storedMessage),
		byHash:  make(map[string]*storedMessage),
	}
}

// Store appends payload to the owner's namespace for typ and returns the
// assigned hash and timestamp. Re-storing an identical payload returns the
// original acknowledgement.
func (l *MessageLog) Store(owner models.Owner, typ models.DocumentType, payload []byte) models.StoreResponse {
	hash := utils.HashPayload(payload)

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.byHash[ownerHashKey(owner, hash)]; ok {
		return models.StoreResponse{Hash: existing.hash, AcceptedAt: existing.sentAt}
	}

	sentAt := time.Now().Unix()
	if sentAt < l.lastSentAt {
		sentAt = l.lastSentAt
	}
	l.lastSentAt = sentAt

	msg := &storedMessage{
		payload: append([]byte(nil), payload...),
		hash:    hash,
		sentAt:  sentAt,
		docType: typ,
	}
	l.byOwner[owner] = append(l.byOwner[owner], msg)
	l.byHash[ownerHashKey(owner, hash)] = msg

	return models.StoreResponse{Hash: msg.hash, AcceptedAt: msg.sentAt}
}

// Retrieve returns the owner's messages with a receive timestamp at or
// after since, in arrival order. A zero since returns everything.
func (l *MessageLog) Retrieve(owner models.Owner, since int64) []models.IncomingMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stored := l.byOwner[owner]
	out := make([]models.IncomingMessage, 0, len(stored))
	for _, msg := range stored {
		if msg.sentAt < since {
			continue
		}
		out = append(out, models.IncomingMessage{
			Payload: append([]byte(nil), msg.payload...),
			Hash:    msg.hash,
			SentAt:  msg.sentAt,
			Type:    msg.docType,
		})
	}
	return out
}

// Delete removes the named hashes from the owner's namespace and reports
// how many were actually present.
func (l *MessageLog) Delete(owner models.Owner, hashes []string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	doomed := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		if _, ok := l.byHash[ownerHashKey(owner, h)]; ok {
			doomed[h] = struct{}{}
			delete(l.byHash, ownerHashKey(owner, h))
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := l.byOwner[owner][:0]
	for _, msg := range l.byOwner[owner] {
		if _, gone := doomed[msg.hash]; !gone {
			kept = append(kept, msg)
		}
	}
	l.byOwner[owner] = kept

	return len(doomed)
}

// Count reports how many messages the owner currently has stored.
func (l *MessageLog) Count(owner models.Owner) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byOwner[owner])
}

func ownerHashKey(owner models.Owner, hash string) string {
	return string(owner) + "/" + hash
}
