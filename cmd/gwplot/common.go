// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/echristi/gwplot/inp"
	"github.com/echristi/gwplot/out"
	"github.com/echristi/gwplot/plot"
	"github.com/spf13/cobra"
)

// plotCtx gathers everything the plotting commands share: the loaded model,
// the optional style file and the requested output time
type plotCtx struct {
	Model  *inp.Model
	Styles plot.Styles
	Kstp   int
	Kper   int
}

// addPlotFlags registers the flags common to the map and xsec commands
func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().String("styles", "", "YAML style file")
	cmd.Flags().Int("kstp", 0, "Time step to plot (0 selects the last one in the head file)")
	cmd.Flags().Int("kper", 0, "Stress period to plot (0 selects the last one)")
	cmd.Flags().StringP("out", "o", ".", "Output directory for the figure")
	cmd.Flags().String("fig", "", "Figure name (default: model name)")
	cmd.Flags().Bool("grid", false, "Draw the grid lines")
	cmd.Flags().Bool("ibound", false, "Fill inactive and constant-head cells")
	cmd.Flags().Bool("heads", false, "Fill cells with simulated heads")
	cmd.Flags().Bool("contours", false, "Contour simulated heads")
}

// loadPlotCtx loads the model and style file named by the flags
func loadPlotCtx(cmd *cobra.Command) (o *plotCtx, err error) {
	workspace, _ := cmd.Flags().GetString("workspace")
	namefile, _ := cmd.Flags().GetString("namefile")
	if namefile == "" {
		return nil, chk.Err("a name file is required (-n)")
	}
	o = new(plotCtx)
	o.Model, err = inp.LoadModel(workspace, namefile)
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("styles"); path != "" {
		o.Styles, err = plot.LoadStyles(path)
		if err != nil {
			return nil, err
		}
	}
	o.Kstp, _ = cmd.Flags().GetInt("kstp")
	o.Kper, _ = cmd.Flags().GetInt("kper")
	return
}

// headsPath locates the binary head file named by the DATA(BINARY)
// records of the name file
func (o *plotCtx) headsPath() string {
	return filepath.Join(o.Model.Workspace, o.Model.OutputFile(".hds"))
}

// budgetPath locates the cell-by-cell budget file
func (o *plotCtx) budgetPath() string {
	return filepath.Join(o.Model.Workspace, o.Model.OutputFile(".cbc"))
}

// heads reads the simulated heads at the requested (kstp,kper), defaulting
// to the last output time in the file
func (o *plotCtx) heads() (h [][][]float64, err error) {
	hf, err := out.OpenHeadFile(o.headsPath())
	if err != nil {
		return nil, err
	}
	kstp, kper := o.Kstp, o.Kper
	if kstp == 0 || kper == 0 {
		pairs := hf.KstpKper()
		last := pairs[len(pairs)-1]
		kstp, kper = last[0], last[1]
	}
	return hf.Head(kstp, kper)
}

// faceFlows reads the face-flow arrays at the requested (kstp,kper)
func (o *plotCtx) faceFlows() (frf, fff, flf [][][]float64, err error) {
	cbc, err := out.OpenCellBudget(o.budgetPath())
	if err != nil {
		return nil, nil, nil, err
	}
	kstp, kper := o.Kstp, o.Kper
	if kstp == 0 || kper == 0 {
		last := cbc.Records[len(cbc.Records)-1]
		kstp, kper = last.Kstp, last.Kper
	}
	return cbc.FaceFlows(kstp, kper)
}

// figName returns the figure file key
func (o *plotCtx) figName(cmd *cobra.Command, suffix string) string {
	if fig, _ := cmd.Flags().GetString("fig"); fig != "" {
		return fig
	}
	return o.Model.Name + suffix
}

// maskedHeads returns the sentinel values to hide when painting heads
func (o *plotCtx) maskedHeads() []float64 {
	return []float64{o.Model.Bas.Hnoflo, 1e30, -1e30}
}
