// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import "github.com/evanw/esbuild/pkg/api"

// HostConfig is the part of the bundler config the plugin touches.
type HostConfig struct {
	// OptimizeDeps configures the dependency pre-bundler.
	OptimizeDeps *OptimizeDepsConfig
}

// OptimizeDepsConfig configures the dependency pre-bundler.
type OptimizeDepsConfig struct {
	// EsbuildOptions are passed to the pre-bundler esbuild run.
	EsbuildOptions *api.BuildOptions
}

// MergeSubPlugin returns cfg with sub appended to the pre-bundler plugins.
//
// Missing intermediate structures are created. cfg is not modified and the
// returned plugin slice never aliases the input one; existing plugins keep
// their order.
func MergeSubPlugin(cfg HostConfig, sub api.Plugin) HostConfig {
	deps := OptimizeDepsConfig{}
	if cfg.OptimizeDeps != nil {
		deps = *cfg.OptimizeDeps
	}

	build := api.BuildOptions{}
	if deps.EsbuildOptions != nil {
		build = *deps.EsbuildOptions
	}

	plugins := make([]api.Plugin, 0, len(build.Plugins)+1)
	plugins = append(plugins, build.Plugins...)
	build.Plugins = append(plugins, sub)

	deps.EsbuildOptions = &build
	cfg.OptimizeDeps = &deps

	return cfg
}

// MergeEntries merges entry slices preserving input order.
func MergeEntries(sets ...[]FilterEntry) []FilterEntry {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]FilterEntry, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
