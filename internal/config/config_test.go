// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pluginswc"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_FileAndFilterLists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "extra.list"), "# shared\nglob:packages/*/src/**\n")
	writeFile(t, filepath.Join(dir, "pluginswc.yml"), `
apply: Build
include:
  - my-lib
  - /legacy/i
include_files: [extra.list]
exclude: ["glob:**/*.spec.ts"]
extensions: [ts, .tsx]
transform_options:
  sourceMaps: true
  jsc:
    target: es2020
node:
  binary: /usr/bin/node
  dir: web
log:
  level: debug
`)

	cfg, err := Load(filepath.Join(dir, "pluginswc.yml"))
	require.NoError(t, err)

	assert.Equal(t, "build", cfg.Apply)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"ts", ".tsx"}, cfg.Extensions)
	assert.Equal(t, pluginswc.NodeTransformer{Binary: "/usr/bin/node", Dir: filepath.Join(dir, "web")}, cfg.Transformer())

	opts, err := cfg.PluginOptions(cfg.Transformer())
	require.NoError(t, err)
	require.Len(t, opts.Include, 3)
	assert.Equal(t, pluginswc.EntryModule, opts.Include[0].Kind)
	assert.Equal(t, pluginswc.EntryPattern, opts.Include[1].Kind)
	assert.Equal(t, pluginswc.EntryGlob, opts.Include[2].Kind)
	require.Len(t, opts.Exclude, 1)
	assert.Equal(t, pluginswc.ApplyBuild, opts.Apply)
	assert.Equal(t, true, opts.TransformOptions["sourceMaps"])

	p, err := pluginswc.New(opts)
	require.NoError(t, err)
	assert.True(t, p.Filter().ShouldTransform("node_modules/my-lib/a.ts"))
	assert.True(t, p.Filter().ShouldTransform("packages/ui/src/button.tsx"))
	assert.False(t, p.Filter().ShouldTransform("packages/ui/src/button.spec.ts"))
	assert.False(t, p.Filter().ShouldTransform("node_modules/my-lib/a.js"), "extensions override the default set")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "node", cfg.Node.Binary)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Apply)

	opts, err := cfg.PluginOptions(cfg.Transformer())
	require.NoError(t, err)
	assert.Empty(t, opts.Include)
	assert.Empty(t, opts.Exclude)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pluginswc.yml"), "apply: build\nlog:\n  level: info\n")

	t.Setenv("PLUGINSWC__APPLY", "serve")
	t.Setenv("PLUGINSWC__LOG__LEVEL", "warn")
	t.Setenv("PLUGINSWC__LOG__JSON", "true")

	cfg, err := Load(filepath.Join(dir, "pluginswc.yml"))
	require.NoError(t, err)

	assert.Equal(t, "serve", cfg.Apply)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_InvalidApply(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pluginswc.yml"), "apply: sometimes\n")

	_, err := Load(filepath.Join(dir, "pluginswc.yml"))
	require.ErrorIs(t, err, ErrInvalidApply)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pluginswc.yml"), "include: [unterminated\n")

	_, err := Load(filepath.Join(dir, "pluginswc.yml"))
	require.Error(t, err)
}

func TestPluginOptions_NumberEntryFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pluginswc.yml"), "include: []\nexclude: [legacy, 42]\n")

	cfg, err := Load(filepath.Join(dir, "pluginswc.yml"))
	require.NoError(t, err)

	_, err = cfg.PluginOptions(cfg.Transformer())
	require.ErrorIs(t, err, pluginswc.ErrInvalidFilterEntry)
	assert.Contains(t, err.Error(), "exclude")
}

func TestPluginOptions_MissingListFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pluginswc.yml"), "exclude_files: [nope.list]\n")

	cfg, err := Load(filepath.Join(dir, "pluginswc.yml"))
	require.NoError(t, err)

	_, err = cfg.PluginOptions(cfg.Transformer())
	require.ErrorIs(t, err, os.ErrNotExist)
}
