// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pluginswc"
	"github.com/woozymasta/pluginswc/internal/config"
	"github.com/woozymasta/pluginswc/internal/logging"
)

// app carries state shared by subcommands after config load.
type app struct {
	cfg        config.Config
	configPath string
	logLevel   string
	// transformer overrides the node transformer in tests.
	transformer pluginswc.Transformer
}

// plugin builds the plugin from loaded config.
func (a *app) plugin() (*pluginswc.Plugin, error) {
	t := a.transformer
	if t == nil {
		t = a.cfg.Transformer()
	}

	opts, err := a.cfg.PluginOptions(t)
	if err != nil {
		return nil, err
	}

	opts.Logger = logging.L()
	return pluginswc.New(opts)
}

// NewRootCommand builds the CLI.
func NewRootCommand(version, commit, date string) *cobra.Command {
	return newRootCommand(&app{}, version, commit, date)
}

func newRootCommand(a *app, version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pluginswc",
		Short: "Route bundler sources through swc",
		Long: `pluginswc decides which source files a bundler should hand to swc and runs
the transform the same way the bundler and its dependency pre-bundler would.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}

			logging.Configure(logging.Options{
				Output: cmd.ErrOrStderr(),
				Level:  cfg.Log.Level,
				JSON:   cfg.Log.JSON,
			})

			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "pluginswc.yml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newCheckCommand(a),
		newTransformCommand(a),
		newBundleCommand(a),
	)

	return rootCmd
}
