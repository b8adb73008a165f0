// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	eligibleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>...",
		Short: "Show whether module ids would be transformed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plugin()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range args {
				d := p.Filter().Decide(id)
				if d.Eligible {
					fmt.Fprintf(out, "%s %s\n", eligibleStyle.Render("transform"), id)
					continue
				}

				fmt.Fprintf(out, "%s %s (%s)\n", skippedStyle.Render("skip"), id, d.Reason)
			}

			return nil
		},
	}
}
