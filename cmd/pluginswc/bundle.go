// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pluginswc"
	"github.com/woozymasta/pluginswc/internal/logging"
)

var errBuildFailed = errors.New("build failed")

var bundleFormats = map[string]api.Format{
	"esm":  api.FormatESModule,
	"cjs":  api.FormatCommonJS,
	"iife": api.FormatIIFE,
}

func newBundleCommand(a *app) *cobra.Command {
	var outfile, format string

	cmd := &cobra.Command{
		Use:   "bundle <entry>...",
		Short: "Pre-bundle entries with esbuild through the swc plugin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := bundleFormats[strings.ToLower(format)]
			if !ok {
				return fmt.Errorf("unsupported format %q", format)
			}

			p, err := a.plugin()
			if err != nil {
				return err
			}

			host := pluginswc.HostConfig{}
			for _, active := range pluginswc.Plugins("build", p) {
				host = active.Config(host)
			}

			opts := api.BuildOptions{}
			if host.OptimizeDeps != nil && host.OptimizeDeps.EsbuildOptions != nil {
				opts = *host.OptimizeDeps.EsbuildOptions
			}

			opts.EntryPoints = args
			opts.Bundle = true
			opts.Format = f
			opts.Outfile = outfile
			opts.Write = outfile != ""
			opts.LogLevel = api.LogLevelSilent

			result := api.Build(opts)
			if len(result.Errors) > 0 {
				for _, msg := range api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage}) {
					fmt.Fprint(cmd.ErrOrStderr(), msg)
				}

				return fmt.Errorf("%w: %d error(s)", errBuildFailed, len(result.Errors))
			}

			if outfile == "" {
				for _, file := range result.OutputFiles {
					if _, err := cmd.OutOrStdout().Write(file.Contents); err != nil {
						return err
					}
				}
			}

			logging.L().Info("bundle complete", "entries", len(args), "outfile", outfile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outfile, "outfile", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "esm", "output format (esm, cjs, iife)")

	return cmd
}
