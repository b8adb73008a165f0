// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pluginswc/internal/logging"
)

func newTransformCommand(a *app) *cobra.Command {
	var outPath, mapPath string

	cmd := &cobra.Command{
		Use:   "transform <file>",
		Short: "Run the bundler transform hook on one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plugin()
			if err != nil {
				return err
			}

			id := args[0]
			src, err := os.ReadFile(id)
			if err != nil {
				return fmt.Errorf("read %s: %w", id, err)
			}

			res, err := p.Transform(cmd.Context(), string(src), id)
			if err != nil {
				return err
			}

			code := string(src)
			if res == nil {
				logging.L().Info("file not eligible, passing through", "id", id)
			} else {
				code = res.Code
				if mapPath != "" && res.Map != "" {
					if err := os.WriteFile(mapPath, []byte(res.Map), 0o644); err != nil {
						return fmt.Errorf("write map: %w", err)
					}
				}
			}

			if outPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), code)
				return err
			}

			if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&mapPath, "map", "", "source map output file")

	return cmd
}
