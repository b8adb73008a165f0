// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"context"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

// PrebundlePlugin returns the esbuild plugin for the dependency pre-bundler.
//
// It loads eligible files from disk and returns the transformed text as their
// contents. Source maps are not produced on this path.
func (p *Plugin) PrebundlePlugin() api.Plugin {
	return api.Plugin{
		Name: PrebundlePluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{
				Filter:    p.filter.ExtensionFilter(),
				Namespace: "file",
			}, p.onLoad)
		},
	}
}

// onLoad is the pre-bundler load callback. An empty result declines the file.
func (p *Plugin) onLoad(args api.OnLoadArgs) (api.OnLoadResult, error) {
	res, err := p.process(context.Background(), HookPrebundle, args.Path, func(id string) (string, error) {
		data, err := p.readFile(id)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", id, err)
		}

		return string(data), nil
	})
	if err != nil {
		return api.OnLoadResult{}, err
	}

	if res == nil {
		return api.OnLoadResult{}, nil
	}

	contents := res.Code
	return api.OnLoadResult{
		PluginName: PrebundlePluginName,
		Contents:   &contents,
	}, nil
}
