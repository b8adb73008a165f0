// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/woozymasta/pluginswc/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	_ = godotenv.Load()
	logging.InitFromEnv()

	if err := NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}
