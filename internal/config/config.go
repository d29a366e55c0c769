// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for configsync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity-level settings: the owner identity and the hex
	// encoding of the long-lived identity secret seeding the codec's
	// cryptographic routines.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the snapshot persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Relay holds the relay endpoint, authentication material, and the
	// listen address used when running the dev relay server.
	Relay Relay `envPrefix:"RELAY_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups identity settings for the local device.
type App struct {
	// Owner is the hex-encoded identity public key whose documents this
	// device synchronizes.
	Owner string `env:"OWNER"`

	// IdentitySecretHex is the hex encoding of the identity secret. It is
	// decoded once at startup and moved into a locked memory enclave; the
	// config value itself is never logged.
	IdentitySecretHex string `env:"IDENTITY_SECRET"`
}

// Storage groups the snapshot persistence settings. Exactly one backend is
// active at a time, selected by Backend.
type Storage struct {
	// Backend selects the snapshot store implementation: "sqlite" (default)
	// or "badger".
	Backend string `env:"BACKEND"`

	// DSN is the SQLite database file path used when Backend is "sqlite".
	DSN string `env:"DSN"`

	// BadgerDir is the Badger value-log directory used when Backend is
	// "badger". An empty value with the badger backend selects an
	// in-memory store (tests, sim).
	BadgerDir string `env:"BADGER_DIR"`
}

// Relay groups relay transport settings shared by the HTTP adapter and the
// dev relay server.
type Relay struct {
	// HTTPAddress is the base URL of the relay the adapter talks to.
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// ListenAddress is the host:port the dev relay server binds to.
	ListenAddress string `env:"LISTEN_ADDRESS"`

	// RequestTimeout is the default timeout for outbound relay requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey is the shared HMAC key used to sign and verify relay
	// bearer tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected issuer claim of relay bearer tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of freshly minted relay tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Workers groups background job settings.
type Workers struct {
	// SyncInterval defines how often the background sync job runs a full
	// pull-merge-push cycle.
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and the optional JSON file, in that
// priority order, then validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
