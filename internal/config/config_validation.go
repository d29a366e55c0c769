// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package config

import (
	"encoding/hex"
	"fmt"
)

// validate checks the merged structured config for cross-source
// inconsistencies. Role-specific requirements (device vs. relay server) are
// enforced by the view constructors, so only values that are wrong in any
// role are rejected here.
func (c *StructuredConfig) validate() error {
	switch c.Storage.Backend {
	case "", "sqlite", "badger":
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, c.Storage.Backend)
	}

	if c.App.IdentitySecretHex != "" {
		if _, err := hex.DecodeString(c.App.IdentitySecretHex); err != nil {
			return fmt.Errorf("%w: identity secret is not valid hex", ErrInvalidAppConfigs)
		}
	}

	if c.Workers.SyncInterval < 0 {
		return fmt.Errorf("%w: negative sync interval", ErrInvalidWorkerConfigs)
	}
	if c.Relay.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidRelayConfigs)
	}

	return nil
}

// validate enforces everything a syncing device needs before it can run.
// The owner identity itself is optional: when absent it is derived from the
// identity secret at assembly time.
func (c *DeviceConfig) validate() error {
	if c.App.IdentitySecretHex == "" {
		return fmt.Errorf("%w: identity secret is required", ErrInvalidAppConfigs)
	}
	if c.Relay.HTTPAddress == "" {
		return fmt.Errorf("%w: relay address is required", ErrInvalidRelayConfigs)
	}
	if c.Storage.Backend == "sqlite" || c.Storage.Backend == "" {
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: sqlite backend requires a DSN", ErrInvalidStorageConfigs)
		}
	}
	return nil
}

// validate enforces everything the dev relay server needs before it can run.
func (c *RelayConfig) validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidRelayConfigs)
	}
	if c.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidRelayConfigs)
	}
	if c.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidRelayConfigs)
	}
	return nil
}
