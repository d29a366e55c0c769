// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "configsync",
	Short: "Multi-device config synchronization tooling",
}

func main() {
	printBuildInfo()

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("rootCmd.Execute: %v", err)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
