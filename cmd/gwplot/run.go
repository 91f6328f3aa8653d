// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os/signal"
	"syscall"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/echristi/gwplot/inp"
	"github.com/echristi/gwplot/run"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the external simulator on a model",
		Long: `Run loads the model from its name file, invokes the external simulator
executable in the model workspace, and reports whether the expected
binary output files (heads and cell-by-cell budget) were produced.`,
		RunE: runRun,
	}
	cmd.Flags().StringP("exe", "e", "mf2005", "Simulator executable name or path")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	workspace, _ := cmd.Flags().GetString("workspace")
	namefile, _ := cmd.Flags().GetString("namefile")
	exeName, _ := cmd.Flags().GetString("exe")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if namefile == "" {
		return chk.Err("a name file is required (-n)")
	}

	// loading the model up front validates the input before the run
	m, err := inp.LoadModel(workspace, namefile)
	if err != nil {
		return err
	}
	g := m.Grid
	io.Pf("loaded model %q: %d layers, %d rows, %d columns, %d stress periods\n",
		m.Name, g.Nlay, g.Nrow, g.Ncol, m.Dis.Nper)

	exe, err := run.FindExe(exeName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	success, _, err := run.Run(ctx, exe, namefile, workspace, verbose)
	if err != nil {
		return err
	}
	if !success {
		io.Pfred("the simulator did not report normal termination\n")
	}
	if !run.CheckOutput(workspace, m.Name) {
		return chk.Err("simulation did not produce the expected output files")
	}
	io.Pf("simulation finished\n")
	return nil
}
