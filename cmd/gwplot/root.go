// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for gwplot.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gwplot",
		Short: "Run a groundwater model and plot its results",
		Long: `gwplot loads a pre-built groundwater flow model, runs the external
simulator executable on it, and renders plan-view maps and vertical
cross-sections of the grid, boundary conditions, simulated heads,
flow budgets and shapefile overlays.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			io.Verbose = verbose
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", true, "Print progress messages")
	cmd.PersistentFlags().StringP("workspace", "w", ".", "Model workspace directory")
	cmd.PersistentFlags().StringP("namefile", "n", "", "Model name file (required)")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewMapCmd())
	cmd.AddCommand(NewXsecCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
