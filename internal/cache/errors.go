// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package cache

import (
	"errors"
	"fmt"

	"github.com/session-foundation/configsync/internal/engine"
)

var (
	// ErrUserDoesNotExist is returned when an operation references an
	// owner with no registered identity. It means "nothing to do yet",
	// not a failure.
	ErrUserDoesNotExist = errors.New("user does not exist")

	// ErrObjectNotLoaded is returned when an operation references a
	// document key that is not in the registry. It wraps
	// [engine.ErrNilConfigObject], so callers can match either sentinel
	// with errors.Is.
	ErrObjectNotLoaded = fmt.Errorf("config object not loaded: %w", engine.ErrNilConfigObject)

	// ErrUnableToLoadObject wraps snapshot-store and engine failures
	// during Load.
	ErrUnableToLoadObject = errors.New("unable to load config object")
)
