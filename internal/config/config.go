// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

// Package config loads plugin configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/woozymasta/pluginswc"
)

// EnvPrefix prefixes environment overrides, "__" separates nesting levels
// (PLUGINSWC__LOG__LEVEL=debug).
const EnvPrefix = "PLUGINSWC__"

// ErrInvalidApply indicates an unknown host run mode.
var ErrInvalidApply = errors.New("invalid apply mode")

// Node configures the node-backed transformer.
type Node struct {
	Binary string `koanf:"binary"`
	Dir    string `koanf:"dir"`
}

// Log configures the process logger.
type Log struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// Config is the integrator configuration surface.
type Config struct {
	TransformOptions map[string]any `koanf:"transform_options"`
	Node             Node           `koanf:"node"`
	Log              Log            `koanf:"log"`
	Apply            string         `koanf:"apply"`
	// Include and Exclude hold raw list items; they are typed in PluginOptions.
	Include      []any    `koanf:"include"`
	Exclude      []any    `koanf:"exclude"`
	IncludeFiles []string `koanf:"include_files"`
	ExcludeFiles []string `koanf:"exclude_files"`
	Extensions   []string `koanf:"extensions"`

	// baseDir resolves relative file references.
	baseDir string
}

// Load merges YAML (if present) with env-vars.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	baseDir := "."
	if path != "" {
		baseDir = filepath.Dir(path)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.baseDir = baseDir
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that do not need the file system.
func (c Config) Validate() error {
	switch pluginswc.Apply(c.Apply) {
	case pluginswc.ApplyAlways, pluginswc.ApplyServe, pluginswc.ApplyBuild:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidApply, c.Apply)
	}

	return nil
}

// PluginOptions builds plugin options, typing filter entries and loading
// filter list files.
func (c Config) PluginOptions(t pluginswc.Transformer) (pluginswc.Options, error) {
	include, err := c.entries(c.Include, c.IncludeFiles)
	if err != nil {
		return pluginswc.Options{}, fmt.Errorf("include: %w", err)
	}

	exclude, err := c.entries(c.Exclude, c.ExcludeFiles)
	if err != nil {
		return pluginswc.Options{}, fmt.Errorf("exclude: %w", err)
	}

	return pluginswc.Options{
		Transformer:      t,
		TransformOptions: c.TransformOptions,
		Apply:            pluginswc.Apply(c.Apply),
		Include:          include,
		Exclude:          exclude,
		Extensions:       c.Extensions,
	}, nil
}

// Transformer returns the node-backed transformer.
func (c Config) Transformer() pluginswc.NodeTransformer {
	return pluginswc.NodeTransformer{
		Binary: c.Node.Binary,
		Dir:    c.resolve(c.Node.Dir),
	}
}

func (c Config) entries(values []any, files []string) ([]pluginswc.FilterEntry, error) {
	inline, err := pluginswc.ParseEntries(values)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, c.resolve(f))
	}

	loaded, err := pluginswc.LoadEntriesFiles(paths...)
	if err != nil {
		return nil, err
	}

	return pluginswc.MergeEntries(inline, loaded), nil
}

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.baseDir == "" {
		return p
	}

	return filepath.Join(c.baseDir, p)
}

func applyDefaults(c *Config) {
	if c.Node.Binary == "" {
		c.Node.Binary = "node"
	}

	if c.Node.Dir == "" {
		c.Node.Dir = "."
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.Apply = strings.ToLower(strings.TrimSpace(c.Apply))
}
