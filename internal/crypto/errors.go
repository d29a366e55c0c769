// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package crypto

import "errors"

var (
	// ErrUnknownOwner is returned by the keyring when a sealer is requested
	// for an owner that has no registered secret.
	ErrUnknownOwner = errors.New("no secret registered for owner")

	// ErrSealedBlobTooShort is returned when a sealed blob is shorter than
	// the version byte plus nonce it must begin with.
	ErrSealedBlobTooShort = errors.New("sealed blob too short")

	// ErrUnsupportedSealVersion is returned when the leading version byte
	// of a sealed blob names an unknown format revision.
	ErrUnsupportedSealVersion = errors.New("unsupported seal version")
)
