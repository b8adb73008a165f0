// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/woozymasta/pluginswc/internal/logging"
)

const (
	// PluginName is the bundler plugin name.
	PluginName = "vite-plugin-swc"
	// PrebundlePluginName is the nested pre-bundler plugin name.
	PrebundlePluginName = "esbuild-plugin-swc"
	// EnforcePre asks the host to run the plugin before other transforms.
	EnforcePre = "pre"
)

// Plugin routes eligible files through the transformer in both the bundler
// transform hook and the pre-bundler load hook.
//
// Plugin holds no mutable state after New and is safe for concurrent hook calls.
type Plugin struct {
	// filter is shared by both hooks.
	filter *Filter
	// transformer runs the external transform.
	transformer Transformer
	// readFile reads pre-bundled files.
	readFile func(name string) ([]byte, error)
	// logger receives decision logs.
	logger *slog.Logger
	// metrics counts hook outcomes.
	metrics *metrics
	// transformOptions are caller options, copied at construction.
	transformOptions map[string]any
	// apply is the opaque host run mode.
	apply Apply
}

// New validates options and builds a plugin.
//
// Malformed include/exclude entries fail here so the host aborts its
// configuration step before any file is processed.
func New(opts Options) (*Plugin, error) {
	if opts.Transformer == nil {
		return nil, ErrNilTransformer
	}

	filter, err := NewFilter(opts.Include, opts.Exclude, opts.Extensions)
	if err != nil {
		return nil, err
	}

	readFile := opts.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.L()
	}

	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, err
	}

	return &Plugin{
		filter:           filter,
		transformer:      opts.Transformer,
		readFile:         readFile,
		logger:           logger.With("plugin", PluginName),
		metrics:          m,
		transformOptions: maps.Clone(opts.TransformOptions),
		apply:            opts.Apply,
	}, nil
}

// Name returns the bundler plugin name.
func (p *Plugin) Name() string { return PluginName }

// Enforce returns the ordering hint.
func (p *Plugin) Enforce() string { return EnforcePre }

// Apply returns the configured host run mode.
func (p *Plugin) Apply() Apply { return p.apply }

// Filter returns the compiled eligibility filter.
func (p *Plugin) Filter() *Filter { return p.filter }

// Config is the host config hook. It installs the pre-bundler plugin.
func (p *Plugin) Config(cfg HostConfig) HostConfig {
	return MergeSubPlugin(cfg, p.PrebundlePlugin())
}

// Transform is the bundler transform hook.
//
// A nil result without error declines the module so the host falls through
// to the next transform plugin.
func (p *Plugin) Transform(ctx context.Context, code, id string) (*TransformResult, error) {
	res, err := p.process(ctx, HookTransform, id, func(string) (string, error) {
		return code, nil
	})
	if err != nil || res == nil {
		return nil, err
	}

	return &TransformResult{Code: res.Code, Map: res.Map}, nil
}

// process is the decision and transform pipeline shared by both hooks.
//
// source is only called for eligible ids and receives the cleaned id.
// A nil result means the id is not eligible.
func (p *Plugin) process(ctx context.Context, hook, rawID string, source func(id string) (string, error)) (*Result, error) {
	id := CleanURL(rawID)

	decision := p.filter.Decide(id)
	if !decision.Eligible {
		p.logger.Debug("decline", "hook", hook, "id", decision.ID, "reason", decision.Reason)
		p.metrics.count(hook, outcomeDeclined)
		return nil, nil
	}

	code, err := source(id)
	if err != nil {
		p.metrics.count(hook, outcomeFailed)
		return nil, err
	}

	started := time.Now()
	res, err := runTransform(ctx, p.transformer, code, id, p.transformOptions)
	p.metrics.observeTransform(hook, started)
	if err != nil {
		p.logger.Debug("transform failed", "hook", hook, "id", decision.ID, "err", err)
		p.metrics.count(hook, outcomeFailed)
		return nil, err
	}

	p.logger.Debug("transformed", "hook", hook, "id", decision.ID)
	p.metrics.count(hook, outcomeTransformed)

	return res, nil
}

// Plugins returns the plugins active for host command, preserving order.
func Plugins(command string, plugins ...*Plugin) []*Plugin {
	return slices.DeleteFunc(slices.Clone(plugins), func(p *Plugin) bool {
		return p == nil || !p.apply.Matches(command)
	})
}
