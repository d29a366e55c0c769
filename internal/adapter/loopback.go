// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package adapter

import (
	"context"
	"sync"

	"github.com/session-foundation/configsync/internal/relay"
	"github.com/session-foundation/configsync/models"
)

// LoopbackRelay is an in-process RelayAdapter backed by the relay message
// log directly, with no HTTP transport. Several devices sharing one
// LoopbackRelay see each other's pushes immediately, which makes it the
// transport of the multi-device simulator and of tests.
type LoopbackRelay struct {
	messages *relay.MessageLog

	mu   sync.Mutex
	subs map[models.Owner][]chan struct{}
}

func NewLoopbackRelay() *LoopbackRelay {
	return &LoopbackRelay{
		messages: relay.NewMessageLog(),
		subs:     make(map[models.Owner][]chan struct{}),
	}
}

func (l *LoopbackRelay) SendPush(_ context.Context, owner models.Owner, push models.PendingPush) (models.StoreResponse, error) {
	resp := l.messages.Store(owner, push.Type, push.Payload)
	l.wake(owner)
	return resp, nil
}

func (l *LoopbackRelay) FetchIncoming(_ context.Context, owner models.Owner, since int64) ([]models.IncomingMessage, error) {
	return l.messages.Retrieve(owner, since), nil
}

func (l *LoopbackRelay) DeleteMessages(_ context.Context, owner models.Owner, hashes []string) error {
	l.messages.Delete(owner, hashes)
	return nil
}

func (l *LoopbackRelay) Subscribe(ctx context.Context, owner models.Owner) (<-chan struct{}, error) {
	wake := make(chan struct{}, 1)

	l.mu.Lock()
	l.subs[owner] = append(l.subs[owner], wake)
	l.mu.Unlock()

	go func() {
		<-ctx.Done()
		l.mu.Lock()
		chans := l.subs[owner]
		for i, ch := range chans {
			if ch == wake {
				l.subs[owner] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		l.mu.Unlock()
		close(wake)
	}()

	return wake, nil
}

func (l *LoopbackRelay) wake(owner models.Owner) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs[owner] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
