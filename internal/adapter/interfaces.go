// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package adapter provides transport-layer abstractions for communicating
// with a config relay.
//
// The primary abstraction is [RelayAdapter], which decouples the sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation over the dev relay ([NewHTTPRelayAdapter]) and an
// in-process loopback implementation ([NewLoopbackRelay]) used by tests
// and the sim command.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/session-foundation/configsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with a relay.
// Implementations are responsible for serialisation, authentication and
// mapping transport-level errors to the sentinel values defined in this
// package.
type RelayAdapter interface {
	// SendPush stores one sealed push in the owner's namespace and
	// returns the relay-assigned hash and acceptance timestamp.
	SendPush(ctx context.Context, owner models.Owner, push models.PendingPush) (models.StoreResponse, error)

	// FetchIncoming retrieves every message stored for owner since the
	// given watermark (Unix seconds; zero fetches everything).
	FetchIncoming(ctx context.Context, owner models.Owner, since int64) ([]models.IncomingMessage, error)

	// DeleteMessages removes the named hashes from the owner's namespace.
	DeleteMessages(ctx context.Context, owner models.Owner, hashes []string) error

	// Subscribe opens a wakeup channel that receives a signal whenever
	// the relay stores a new message for owner. The channel closes when
	// ctx is cancelled or the connection drops; callers fall back to
	// interval polling either way.
	Subscribe(ctx context.Context, owner models.Owner) (<-chan struct{}, error)
}
