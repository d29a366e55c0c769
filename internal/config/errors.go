// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid identity settings (for example,
	// a missing owner or a secret that is not valid hex).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid snapshot store settings
	// (for example, an unknown backend name, or a sqlite backend without a
	// DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidRelayConfigs indicates invalid relay settings (for example,
	// a device config without a relay address, or a relay server config
	// without a token sign key).
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
