// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// called without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization
	// header does not parse as "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrUnknownNamespace is returned for a store call naming a document
	// type outside the configsync namespaces.
	ErrUnknownNamespace = errors.New("unknown namespace")
)
