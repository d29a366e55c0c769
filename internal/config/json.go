// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so that JSON config files can express
// durations as human-readable strings ("30s", "5m") or as nanosecond
// integers.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler] for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields. It exists so that the JSON file layout
// can evolve independently of the env/flag field mapping.
type StructuredJSONConfig struct {
	App struct {
		Owner             string `json:"owner"`
		IdentitySecretHex string `json:"identity_secret"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend   string `json:"backend"`
		DSN       string `json:"dsn"`
		BadgerDir string `json:"badger_dir"`
	} `json:"storage,omitempty"`

	Relay struct {
		HTTPAddress    string   `json:"http_address"`
		ListenAddress  string   `json:"listen_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"relay,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

// parseJSON reads and decodes the JSON config file at jsonFilePath and maps
// it into a [StructuredConfig].
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Owner:             jsonCfg.App.Owner,
			IdentitySecretHex: jsonCfg.App.IdentitySecretHex,
		},
		Storage: Storage{
			Backend:   jsonCfg.Storage.Backend,
			DSN:       jsonCfg.Storage.DSN,
			BadgerDir: jsonCfg.Storage.BadgerDir,
		},
		Relay: Relay{
			HTTPAddress:    jsonCfg.Relay.HTTPAddress,
			ListenAddress:  jsonCfg.Relay.ListenAddress,
			RequestTimeout: time.Duration(jsonCfg.Relay.RequestTimeout),
			TokenSignKey:   jsonCfg.Relay.TokenSignKey,
			TokenIssuer:    jsonCfg.Relay.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.Relay.TokenDuration),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}, nil
}
