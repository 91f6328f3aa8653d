// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/echristi/gwplot/plot"
	"github.com/spf13/cobra"
)

// NewXsecCmd creates the xsec command.
func NewXsecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xsec",
		Short: "Render a vertical cross-section along a row or column",
		Long: `Xsec renders a vertical slice of the model along one row or one column:
cell patches, boundary conditions, simulated heads (filled and/or
contoured) and the simulated water surface.

Examples:
  # section along row 4 with heads
  gwplot xsec -w freyberg -n freyberg.nam --row 4 --grid --heads

  # section along column 2 with the water surface
  gwplot xsec -w freyberg -n freyberg.nam --col 2 --grid --surface`,
		RunE: runXsec,
	}
	addPlotFlags(cmd)
	cmd.Flags().Int("row", -1, "Slice along this row (zero-based)")
	cmd.Flags().Int("col", -1, "Slice along this column (zero-based)")
	cmd.Flags().Bool("surface", false, "Draw the simulated water surface")
	return cmd
}

func runXsec(cmd *cobra.Command, args []string) error {
	row, _ := cmd.Flags().GetInt("row")
	col, _ := cmd.Flags().GetInt("col")
	if (row < 0) == (col < 0) {
		return chk.Err("exactly one of --row or --col is required")
	}
	line := plot.AlongRow(row)
	if col >= 0 {
		line = plot.AlongCol(col)
	}

	pc, err := loadPlotCtx(cmd)
	if err != nil {
		return err
	}

	m := pc.Model
	xs := plot.NewCrossSection(m.Grid, m.Ibound, line)

	plt.Reset(true, &plt.A{Prop: 0.6})

	if on, _ := cmd.Flags().GetBool("grid"); on {
		xs.PlotGrid(pc.Styles.ArgsFor("grid"))
	}
	if on, _ := cmd.Flags().GetBool("ibound"); on {
		xs.PlotIbound("", "")
	}

	wantHeads, _ := cmd.Flags().GetBool("heads")
	wantContours, _ := cmd.Flags().GetBool("contours")
	wantSurface, _ := cmd.Flags().GetBool("surface")
	if wantHeads || wantContours || wantSurface {
		heads, err := pc.heads()
		if err != nil {
			return err
		}
		if wantHeads {
			aa := &plot.ArrayArgs{Masked: pc.maskedHeads()}
			if s, ok := pc.Styles.Get("heads"); ok {
				aa.Cmap = s.Cmap
			}
			xs.PlotArray(heads, aa)
		}
		if wantContours {
			xs.ContourArray(heads, pc.Styles.ArgsFor("contours"))
		}
		if wantSurface {
			xs.PlotSurface(heads, pc.Styles.ArgsFor("surface"))
		}
	}

	plt.Gll("distance along section", "elevation", nil)
	outdir, _ := cmd.Flags().GetString("out")
	fig := pc.figName(cmd, "_xsec")
	plt.Save(outdir, fig)
	io.Pf("figure saved to %s\n", io.Sf("%s/%s.png", outdir, fig))
	return nil
}
