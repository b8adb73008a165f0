// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

/*
Package pluginswc routes bundler source files through an external swc transformer.

The package decides, for a given module id, whether the file should be transformed at all,
and applies that decision identically in two hook systems: the bundler transform hook and
a nested esbuild plugin installed into the dependency pre-bundler.

Basic flow:
  - build filter entries (`Module`, `Pattern`, `Glob`, or `ParseEntries` for config values)
  - optionally load entries from filter list files (`LoadEntriesFile`)
  - create the plugin (`New`); malformed entries fail here, before any file is processed
  - let the host merge the pre-bundler plugin into its config (`Plugin.Config`)
  - the host calls `Plugin.Transform` for every module of the main pass

Eligibility policy (`Filter.ShouldTransform`):
  - query and hash suffixes are stripped, separators are normalized to "/"
  - the path must carry one of the transformer's source extensions
  - a non-empty include list must match
  - a non-empty exclude list must not match
  - host internal modules ("@vite/client", "@vite/env") are never transformed,
    even when the exclude list is empty; they never satisfy an include list

Plain string entries name dependencies and match only inside "node_modules/<name>/".
*/
package pluginswc
