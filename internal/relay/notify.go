// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

// notifyHub tracks the websocket connections of devices waiting for new
// messages, grouped by owner. A store call wakes every subscribed device
// of that owner with an empty text frame; the devices then run a normal
// fetch cycle over HTTP.
type notifyHub struct {
	mu     sync.Mutex
	conns  map[models.Owner]map[*websocket.Conn]struct{}
	logger *logger.Logger
}

func newNotifyHub(log *logger.Logger) *notifyHub {
	return &notifyHub{
		conns:  make(map[models.Owner]map[*websocket.Conn]struct{}),
		logger: log,
	}
}

func (h *notifyHub) add(owner models.Owner, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[owner] == nil {
		h.conns[owner] = make(map[*websocket.Conn]struct{})
	}
	h.conns[owner][conn] = struct{}{}
}

func (h *notifyHub) remove(owner models.Owner, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[owner], conn)
	if len(h.conns[owner]) == 0 {
		delete(h.conns, owner)
	}
	_ = conn.Close()
}

// wake notifies every subscriber of owner. Write failures drop the
// connection; the device will reconnect.
func (h *notifyHub) wake(owner models.Owner) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[owner] {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("{}")); err != nil {
			h.logger.Debug().Str("owner", string(owner)).Msg("dropping dead notify subscriber")
			delete(h.conns[owner], conn)
			_ = conn.Close()
		}
	}
	if len(h.conns[owner]) == 0 {
		delete(h.conns, owner)
	}
}
