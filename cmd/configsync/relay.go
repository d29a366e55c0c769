// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package main

import (
	"github.com/spf13/cobra"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
	"github.com/session-foundation/configsync/internal/relay"
)

// GetRelayCmd returns the dev relay server start command. Configuration
// comes from environment variables and the optional JSON config file.
func GetRelayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Run the dev relay server",
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLogger("configsync-relay")

			cfg, err := config.GetRelayConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("error getting configs")
			}

			log.Debug().Any("config", cfg).Msg("received configs")

			relay.NewServer(*cfg, log).RunServer()
		},
	}
}

func init() {
	rootCmd.AddCommand(GetRelayCmd())
}
