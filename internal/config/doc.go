// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package config provides configuration loading, merging, and validation
// facilities for the configsync engine, the sim client, and the dev relay.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the full merged view,
// [GetDeviceConfig] for a syncing device, and [GetRelayConfig] for the dev
// relay server.
package config
