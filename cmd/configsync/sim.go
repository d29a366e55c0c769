// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/session-foundation/configsync/internal/adapter"
	"github.com/session-foundation/configsync/internal/app"
	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/engine"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/models"
)

const (
	FlagDevices = "devices"
	FlagRounds  = "rounds"
	FlagPasses  = "passes"
)

// GetSimCmd returns the convergence simulation command. It runs several
// devices of one account against a shared in-memory relay, lets each device
// make concurrent edits every round, syncs them, and verifies that every
// device ends up with identical state in every document.
func GetSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run an N-device convergence simulation",
		Run: func(cmd *cobra.Command, args []string) {
			devices, err := cmd.Flags().GetInt(FlagDevices)
			if err != nil {
				log.Fatalf("%s flag: %v", FlagDevices, err)
			}
			rounds, err := cmd.Flags().GetInt(FlagRounds)
			if err != nil {
				log.Fatalf("%s flag: %v", FlagRounds, err)
			}
			passes, err := cmd.Flags().GetInt(FlagPasses)
			if err != nil {
				log.Fatalf("%s flag: %v", FlagPasses, err)
			}

			if err := runSim(cmd.Context(), devices, rounds, passes); err != nil {
				log.Fatalf("sim: %v", err)
			}
			fmt.Printf("converged: %d devices, %d rounds\n", devices, rounds)
		},
	}
	cmd.Flags().Int(FlagDevices, 3, "(optional) number of simulated devices")
	cmd.Flags().Int(FlagRounds, 5, "(optional) number of concurrent edit rounds")
	cmd.Flags().Int(FlagPasses, 3, "(optional) sync passes per round")

	return cmd
}

func runSim(ctx context.Context, deviceCount, rounds, passes int) error {
	if deviceCount < 2 {
		return fmt.Errorf("need at least 2 devices, got %d", deviceCount)
	}

	// All devices share one account identity and one relay.
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("generate identity secret: %w", err)
	}
	secretHex := hex.EncodeToString(secret)
	relay := adapter.NewLoopbackRelay()

	sims := make([]*app.Device, 0, deviceCount)
	for i := 0; i < deviceCount; i++ {
		cfg := &config.DeviceConfig{
			App:     config.App{IdentitySecretHex: secretHex},
			Storage: config.Storage{Backend: "badger"},
		}
		device, err := app.NewDevice(ctx, cfg, relay, logger.NewLogger(fmt.Sprintf("sim-device-%d", i)))
		if err != nil {
			return fmt.Errorf("create device %d: %w", i, err)
		}
		defer device.Close()
		sims = append(sims, device)
	}

	owner := sims[0].Owner
	for round := 0; round < rounds; round++ {
		// Concurrent edits before anyone syncs: every device writes its
		// own profile name and adds a fresh contact.
		for i, device := range sims {
			profileKey := models.Key{Type: models.UserProfile, Owner: owner}
			if err := device.Coordinator.SetField(ctx, profileKey, engine.FieldDisplayName, fmt.Sprintf("device-%d-round-%d", i, round)); err != nil {
				return fmt.Errorf("device %d set profile: %w", i, err)
			}

			contactField := "contact:05" + strings.ReplaceAll(uuid.NewString(), "-", "")
			contactsKey := models.Key{Type: models.Contacts, Owner: owner}
			if err := device.Coordinator.SetField(ctx, contactsKey, contactField, map[string]any{
				"name":     fmt.Sprintf("contact of device %d", i),
				"approved": true,
			}); err != nil {
				return fmt.Errorf("device %d add contact: %w", i, err)
			}
		}

		// Several full passes so that pushes propagate, conflicts resolve,
		// and re-pushes of merged state land everywhere.
		for pass := 0; pass < passes; pass++ {
			for i, device := range sims {
				if err := device.Services.SyncService.FullSync(ctx, owner); err != nil {
					return fmt.Errorf("device %d sync (round %d, pass %d): %w", i, round, pass, err)
				}
			}
		}
	}

	return verifyConverged(ctx, sims, owner)
}

func verifyConverged(ctx context.Context, sims []*app.Device, owner models.Owner) error {
	for _, typ := range models.AllDocumentTypes() {
		key := models.Key{Type: typ, Owner: owner}
		reference, err := sims[0].Coordinator.CurrentFields(ctx, key)
		if err != nil {
			return fmt.Errorf("device 0 read %s: %w", key, err)
		}
		for i := 1; i < len(sims); i++ {
			fields, err := sims[i].Coordinator.CurrentFields(ctx, key)
			if err != nil {
				return fmt.Errorf("device %d read %s: %w", i, key, err)
			}
			if !reflect.DeepEqual(reference, fields) {
				return fmt.Errorf("device %d diverged on %s: %d fields vs %d", i, key, len(fields), len(reference))
			}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(GetSimCmd())
}
