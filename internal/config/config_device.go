// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package config

import (
	"fmt"
	"time"
)

// DeviceConfig is the configuration view consumed by a syncing device: the
// identity it owns, the relay it talks to, the snapshot store it persists
// to, and the cadence of its background sync job.
type DeviceConfig struct {
	// App contains the owner identity and secret material settings.
	App App
	// Relay contains the relay endpoint and token settings for the adapter.
	Relay Relay
	// Storage contains snapshot store settings.
	Storage Storage
	// Workers contains background job settings.
	Workers Workers
}

// RelayConfig is the configuration view consumed by the dev relay server.
type RelayConfig struct {
	// ListenAddress is the host:port the server binds to.
	ListenAddress string
	// TokenSignKey is the HMAC key used to verify bearer tokens.
	TokenSignKey string
	// TokenIssuer is the expected issuer claim of bearer tokens.
	TokenIssuer string
	// TokenDuration is the validity window of tokens the relay mints.
	TokenDuration time.Duration
	// RequestTimeout bounds request handling.
	RequestTimeout time.Duration
}

// GetDeviceConfig builds and validates a device-specific config view from
// the merged structured configuration.
func GetDeviceConfig() (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg := &DeviceConfig{
		App:     cfg.App,
		Relay:   cfg.Relay,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}

	return deviceCfg, deviceCfg.validate()
}

// GetRelayConfig builds and validates a relay-server config view from the
// merged structured configuration.
func GetRelayConfig() (*RelayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := &RelayConfig{
		ListenAddress:  cfg.Relay.ListenAddress,
		TokenSignKey:   cfg.Relay.TokenSignKey,
		TokenIssuer:    cfg.Relay.TokenIssuer,
		TokenDuration:  cfg.Relay.TokenDuration,
		RequestTimeout: cfg.Relay.RequestTimeout,
	}

	return relayCfg, relayCfg.validate()
}
