// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/echristi/gwplot/grid"
)

// Line selects the slice of a cross-section: set Row or Col to a
// non-negative index (exactly one of them)
type Line struct {
	Row int // row index for a section along a row; -1 when unused
	Col int // column index for a section along a column; -1 when unused
}

// AlongRow returns a line slicing the model along row i
func AlongRow(i int) Line { return Line{Row: i, Col: -1} }

// AlongCol returns a line slicing the model along column j
func AlongCol(j int) Line { return Line{Row: -1, Col: j} }

// CrossSection plots a vertical slice of a model along one row or column.
// The horizontal axis is the distance along the section; the vertical axis
// is elevation.
type CrossSection struct {
	Grid   *grid.Grid // spatial discretization
	Ibound [][][]int  // boundary array; may be nil
	Line   Line       // the slice

	ncell int       // cells along the section
	dist  []float64 // [ncell+1] distance of cell edges along the section
}

// NewCrossSection returns a cross-section along the given line
func NewCrossSection(g *grid.Grid, ibound [][][]int, line Line) (o *CrossSection) {
	if (line.Row < 0) == (line.Col < 0) {
		chk.Panic("cross-section line must set exactly one of Row or Col")
	}
	o = &CrossSection{Grid: g, Ibound: ibound, Line: line}
	var spacing []float64
	if line.Row >= 0 {
		if line.Row >= g.Nrow {
			chk.Panic("row %d is out of range; grid has %d rows", line.Row, g.Nrow)
		}
		spacing = g.Delr
		o.ncell = g.Ncol
	} else {
		if line.Col >= g.Ncol {
			chk.Panic("column %d is out of range; grid has %d columns", line.Col, g.Ncol)
		}
		spacing = g.Delc
		o.ncell = g.Nrow
	}
	o.dist = make([]float64, o.ncell+1)
	for n := 0; n < o.ncell; n++ {
		o.dist[n+1] = o.dist[n] + spacing[n]
	}
	return
}

// cell maps a position along the section to grid indices (row, col)
func (o *CrossSection) cell(n int) (i, j int) {
	if o.Line.Row >= 0 {
		return o.Line.Row, n
	}
	return n, o.Line.Col
}

// patch returns the rectangle of cell n in layer k, in section coordinates
func (o *CrossSection) patch(k, n int) (P [][]float64) {
	i, j := o.cell(n)
	top := o.Grid.CellTop(k, i, j)
	bot := o.Grid.Botm[k][i][j]
	return [][]float64{
		{o.dist[n], bot},
		{o.dist[n+1], bot},
		{o.dist[n+1], top},
		{o.dist[n], top},
	}
}

// PlotGrid outlines every cell patch of the section
func (o *CrossSection) PlotGrid(args *plt.A) {
	args = defaultA(args, plt.A{Ec: "#808080", Fc: "none", Lw: 0.5, Closed: true})
	for k := 0; k < o.Grid.Nlay; k++ {
		for n := 0; n < o.ncell; n++ {
			plt.Polyline(o.patch(k, n), args)
		}
	}
}

// PlotIbound fills inactive and constant-head cell patches
func (o *CrossSection) PlotIbound(colorNoflow, colorCH string) {
	if o.Ibound == nil {
		chk.Panic("cross-section has no ibound array to plot")
	}
	if colorNoflow == "" {
		colorNoflow = "black"
	}
	if colorCH == "" {
		colorCH = "#0333ff"
	}
	for k := 0; k < o.Grid.Nlay; k++ {
		for n := 0; n < o.ncell; n++ {
			i, j := o.cell(n)
			switch {
			case o.Ibound[k][i][j] == 0:
				fillPoly(o.patch(k, n), colorNoflow, 0)
			case o.Ibound[k][i][j] < 0:
				fillPoly(o.patch(k, n), colorCH, 0)
			}
		}
	}
}

// PlotArray fills every cell patch with the ramp color of its value; a is
// the full [nlay][nrow][ncol] array
func (o *CrossSection) PlotArray(a [][][]float64, args *ArrayArgs) {
	chk.IntAssert(len(a), o.Grid.Nlay)
	flat := o.slice(a)
	vmin, vmax := args.rng(flat)
	cmap := args.cmap()
	var alpha float64
	if args != nil {
		alpha = args.Alpha
	}
	for k := 0; k < o.Grid.Nlay; k++ {
		for n := 0; n < o.ncell; n++ {
			i, j := o.cell(n)
			v := a[k][i][j]
			if args.isMasked(v) {
				continue
			}
			if o.Ibound != nil && o.Ibound[k][i][j] == 0 {
				continue
			}
			fillPoly(o.patch(k, n), cmapColor(v, vmin, vmax, cmap), alpha)
		}
	}
}

// ContourArray draws line contours over the cell centers of the section
// plane: distance along the section versus cell-center elevation
func (o *CrossSection) ContourArray(a [][][]float64, args *plt.A) {
	chk.IntAssert(len(a), o.Grid.Nlay)
	args = defaultA(args, plt.A{Colors: []string{"#3255c2"}, Lw: 1})
	g := o.Grid
	X := utl.Alloc(g.Nlay, o.ncell)
	Y := utl.Alloc(g.Nlay, o.ncell)
	Z := utl.Alloc(g.Nlay, o.ncell)
	for k := 0; k < g.Nlay; k++ {
		for n := 0; n < o.ncell; n++ {
			i, j := o.cell(n)
			X[k][n] = 0.5 * (o.dist[n] + o.dist[n+1])
			Y[k][n] = 0.5 * (g.CellTop(k, i, j) + g.Botm[k][i][j])
			Z[k][n] = a[k][i][j]
		}
	}
	plt.ContourL(X, Y, Z, args)
}

// PlotSurface draws a surface (e.g. the water table) as a stepped line:
// for each position the value of the highest layer holding it
func (o *CrossSection) PlotSurface(a [][][]float64, args *plt.A) {
	chk.IntAssert(len(a), o.Grid.Nlay)
	args = defaultA(args, plt.A{C: "#0333ff", Lw: 1.5})
	x := make([]float64, 2*o.ncell)
	y := make([]float64, 2*o.ncell)
	for n := 0; n < o.ncell; n++ {
		i, j := o.cell(n)
		v := a[0][i][j]
		for k := 0; k < o.Grid.Nlay; k++ {
			if o.Ibound == nil || o.Ibound[k][i][j] != 0 {
				v = a[k][i][j]
				break
			}
		}
		x[2*n], x[2*n+1] = o.dist[n], o.dist[n+1]
		y[2*n], y[2*n+1] = v, v
	}
	plt.Plot(x, y, args)
}

// Extent returns the section bounding box: distance range and the extreme
// elevations
func (o *CrossSection) Extent() (xmin, xmax, ymin, ymax float64) {
	g := o.Grid
	first := true
	for n := 0; n < o.ncell; n++ {
		i, j := o.cell(n)
		top := g.Top[i][j]
		bot := g.Botm[g.Nlay-1][i][j]
		if first {
			ymin, ymax = bot, top
			first = false
			continue
		}
		if bot < ymin {
			ymin = bot
		}
		if top > ymax {
			ymax = top
		}
	}
	return o.dist[0], o.dist[o.ncell], ymin, ymax
}

// slice flattens the section cells of a full array into [nlay][ncell]
func (o *CrossSection) slice(a [][][]float64) (f [][]float64) {
	f = utl.Alloc(o.Grid.Nlay, o.ncell)
	for k := 0; k < o.Grid.Nlay; k++ {
		for n := 0; n < o.ncell; n++ {
			i, j := o.cell(n)
			f[k][n] = a[k][i][j]
		}
	}
	return
}
