// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/echristi/gwplot/gis"
	"github.com/echristi/gwplot/plot"
	"github.com/spf13/cobra"
)

// NewMapCmd creates the map command.
func NewMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render a plan-view map of one model layer",
		Long: `Map renders a plan-view figure of one layer: grid lines, boundary
conditions, simulated heads (filled and/or contoured), the cell-by-cell
flow vector field, and shapefile overlays.

Examples:
  # grid and boundary conditions
  gwplot map -w freyberg -n freyberg.nam --grid --ibound

  # heads with contours and flow vectors, rotated grid
  gwplot map -w freyberg -n freyberg.nam --heads --contours --discharge \
      --xul 619653 --yul 3353277 --rotation 15

  # overlay river and cross-section line shapefiles
  gwplot map -w freyberg -n freyberg.nam --grid --shp river.shp --shp line.shp`,
		RunE: runMap,
	}
	addPlotFlags(cmd)
	cmd.Flags().IntP("layer", "l", 0, "Layer to display (zero-based)")
	cmd.Flags().Float64("xul", 0, "World x of the grid's upper-left corner")
	cmd.Flags().Float64("yul", 0, "World y of the grid's upper-left corner")
	cmd.Flags().Float64("rotation", 0, "Grid rotation about the upper-left corner [degrees ccw]")
	cmd.Flags().Bool("discharge", false, "Draw the cell-by-cell flow vector field")
	cmd.Flags().Int("istep", 1, "Row subsampling of discharge vectors")
	cmd.Flags().Int("jstep", 1, "Column subsampling of discharge vectors")
	cmd.Flags().StringArray("shp", nil, "Shapefile to overlay (repeatable)")
	return cmd
}

func runMap(cmd *cobra.Command, args []string) error {
	pc, err := loadPlotCtx(cmd)
	if err != nil {
		return err
	}
	layer, _ := cmd.Flags().GetInt("layer")
	xul, _ := cmd.Flags().GetFloat64("xul")
	yul, _ := cmd.Flags().GetFloat64("yul")
	rot, _ := cmd.Flags().GetFloat64("rotation")

	m := pc.Model
	mv := plot.NewMapView(m.Grid, m.Ibound, layer, xul, yul, rot)

	plt.Reset(true, &plt.A{Prop: 1.0})

	if on, _ := cmd.Flags().GetBool("grid"); on {
		mv.PlotGrid(pc.Styles.ArgsFor("grid"))
	}
	if on, _ := cmd.Flags().GetBool("ibound"); on {
		mv.PlotIbound("", "")
	}

	needHeads := false
	if on, _ := cmd.Flags().GetBool("heads"); on {
		needHeads = true
	}
	if on, _ := cmd.Flags().GetBool("contours"); on {
		needHeads = true
	}
	if needHeads {
		heads, err := pc.heads()
		if err != nil {
			return err
		}
		if on, _ := cmd.Flags().GetBool("heads"); on {
			aa := &plot.ArrayArgs{Masked: pc.maskedHeads()}
			if s, ok := pc.Styles.Get("heads"); ok {
				aa.Cmap = s.Cmap
			}
			mv.PlotArray3d(heads, aa)
		}
		if on, _ := cmd.Flags().GetBool("contours"); on {
			mv.ContourArray3d(heads, pc.Styles.ArgsFor("contours"))
		}
	}

	if on, _ := cmd.Flags().GetBool("discharge"); on {
		frf, fff, _, err := pc.faceFlows()
		if err != nil {
			return err
		}
		istep, _ := cmd.Flags().GetInt("istep")
		jstep, _ := cmd.Flags().GetInt("jstep")
		mv.PlotDischarge(frf, fff, istep, jstep, pc.Styles.ArgsFor("discharge"))
	}

	shps, _ := cmd.Flags().GetStringArray("shp")
	for _, path := range shps {
		lyr, err := gis.ReadLayer(path, "color", "lw", "fc")
		if err != nil {
			return err
		}
		io.Pf("overlaying %d features from %q\n", len(lyr.Features), path)
		mv.PlotShapefile(lyr, gis.DefaultStyle)
	}

	plt.Equal()
	plt.Gll("x", "y", nil)
	outdir, _ := cmd.Flags().GetString("out")
	fig := pc.figName(cmd, "_map")
	plt.Save(outdir, fig)
	io.Pf("figure saved to %s\n", io.Sf("%s/%s.png", outdir, fig))
	return nil
}
