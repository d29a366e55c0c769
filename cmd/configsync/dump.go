// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/crypto"
	"github.com/session-foundation/configsync/internal/engine"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/store"
)

// snapshotReport is the JSON shape printed per stored document.
type snapshotReport struct {
	Document       string                     `json:"document"`
	Seqno          int64                      `json:"seqno"`
	NeedsPush      bool                       `json:"needs_push"`
	CurrentHashes  []string                   `json:"current_hashes,omitempty"`
	ObsoleteHashes []string                   `json:"obsolete_hashes,omitempty"`
	Fields         map[string]json.RawMessage `json:"fields"`
}

// GetDumpCmd returns the snapshot inspection command. It opens the snapshot
// store from the device config, unseals every stored document of the
// configured identity, and prints its decoded state as JSON.
func GetDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Inspect the snapshot database",
		Run: func(cmd *cobra.Command, args []string) {
			// Structured config directly: dump needs only the identity
			// secret and the storage settings, not a reachable relay.
			cfg, err := config.GetStructuredConfig()
			if err != nil {
				log.Fatalf("get config: %v", err)
			}

			if err := runDump(cmd, cfg); err != nil {
				log.Fatalf("dump: %v", err)
			}
		},
	}
}

func runDump(cmd *cobra.Command, cfg *config.StructuredConfig) error {
	ctx := cmd.Context()

	secret, err := crypto.ParseSecretHex(cfg.App.IdentitySecretHex)
	if err != nil {
		return fmt.Errorf("parse identity secret: %w", err)
	}
	owner := crypto.DeriveOwner(secret)

	keyring := crypto.NewKeyring()
	keyring.Register(owner, secret)

	snapshots, err := store.NewSnapshotStore(ctx, cfg.Storage, logger.Nop())
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer snapshots.Close()

	keys, err := snapshots.List(ctx, owner)
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}
	if len(keys) == 0 {
		fmt.Printf("no snapshots stored for %s\n", owner)
		return nil
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	for _, key := range keys {
		blob, _, err := snapshots.Load(ctx, key)
		if err != nil {
			return fmt.Errorf("load snapshot %s: %w", key, err)
		}

		sealer, err := keyring.SealerFor(key)
		if err != nil {
			return fmt.Errorf("derive sealer for %s: %w", key, err)
		}

		obj, err := engine.New(key, sealer, blob, logger.Nop())
		if err != nil {
			return fmt.Errorf("decode snapshot %s: %w", key, err)
		}

		report := snapshotReport{
			Document:       key.String(),
			Seqno:          obj.Seqno(),
			NeedsPush:      obj.NeedsPush(),
			CurrentHashes:  obj.CurrentHashes(),
			ObsoleteHashes: obj.ObsoleteHashes(),
			Fields:         obj.CurrentFields(),
		}
		if err = out.Encode(report); err != nil {
			return fmt.Errorf("encode report %s: %w", key, err)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(GetDumpCmd())
}
