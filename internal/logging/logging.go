// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

// Package logging owns the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// Options configures the process logger.
type Options struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	Level  string
	JSON   bool
}

var def atomic.Pointer[slog.Logger]

func init() {
	def.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Configure replaces the process logger.
func Configure(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	cfg := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(out, cfg)
	} else {
		h = slog.NewTextHandler(out, cfg)
	}

	def.Store(slog.New(h))
}

// ParseLevel maps a level name to slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns the process logger.
func L() *slog.Logger {
	return def.Load()
}

// InitFromEnv configures the logger from PLUGINSWC_LOG_LEVEL and PLUGINSWC_LOG_JSON.
func InitFromEnv() {
	json, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("PLUGINSWC_LOG_JSON")))
	Configure(Options{Level: os.Getenv("PLUGINSWC_LOG_LEVEL"), JSON: json})
}
