// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/echristi/gwplot/gis"
	"github.com/echristi/gwplot/grid"
)

// MapView plots one layer of a model in plan view. The offset and rotation
// of the grid place every drawn element in world coordinates.
type MapView struct {
	Grid   *grid.Grid // spatial discretization
	Ibound [][][]int  // boundary array; may be nil
	Layer  int        // layer to display (zero-based)
}

// NewMapView returns a map view of one layer, placing the grid at
// (xul, yul) with the given rotation (counter-clockwise, degrees)
func NewMapView(g *grid.Grid, ibound [][][]int, layer int, xul, yul, rot float64) (o *MapView) {
	if layer < 0 || layer >= g.Nlay {
		chk.Panic("layer %d is out of range; grid has %d layers", layer, g.Nlay)
	}
	g.SetOffset(xul, yul, rot)
	return &MapView{Grid: g, Ibound: ibound, Layer: layer}
}

// PlotGrid draws the grid lines
func (o *MapView) PlotGrid(args *plt.A) {
	args = defaultA(args, plt.A{C: "#808080", Lw: 0.5})
	X, Y := o.Grid.Vertices()
	for i := 0; i <= o.Grid.Nrow; i++ {
		plt.Plot(X[i], Y[i], args)
	}
	xcol := make([]float64, o.Grid.Nrow+1)
	ycol := make([]float64, o.Grid.Nrow+1)
	for j := 0; j <= o.Grid.Ncol; j++ {
		for i := 0; i <= o.Grid.Nrow; i++ {
			xcol[i], ycol[i] = X[i][j], Y[i][j]
		}
		plt.Plot(xcol, ycol, args)
	}
}

// PlotIbound fills inactive cells with colorNoflow and constant-head cells
// with colorCH; active cells are left open. Empty color strings select the
// defaults (black and blue).
func (o *MapView) PlotIbound(colorNoflow, colorCH string) {
	if o.Ibound == nil {
		chk.Panic("map view has no ibound array to plot")
	}
	if colorNoflow == "" {
		colorNoflow = "black"
	}
	if colorCH == "" {
		colorCH = "#0333ff"
	}
	ib := o.Ibound[o.Layer]
	o.eachCell(func(i, j int, P [][]float64) {
		switch {
		case ib[i][j] == 0:
			fillPoly(P, colorNoflow, 0)
		case ib[i][j] < 0:
			fillPoly(P, colorCH, 0)
		}
	})
}

// PlotArray fills every cell with the ramp color of its value. a may be a
// 2D [nrow][ncol] array; use PlotArray3d to pick the view's layer from a
// full array.
func (o *MapView) PlotArray(a [][]float64, args *ArrayArgs) {
	chk.IntAssert(len(a), o.Grid.Nrow)
	vmin, vmax := args.rng(a)
	cmap := args.cmap()
	var alpha float64
	if args != nil {
		alpha = args.Alpha
	}
	o.eachCell(func(i, j int, P [][]float64) {
		v := a[i][j]
		if args.isMasked(v) {
			return
		}
		if o.Ibound != nil && o.Ibound[o.Layer][i][j] == 0 {
			return
		}
		fillPoly(P, cmapColor(v, vmin, vmax, cmap), alpha)
	})
}

// PlotArray3d picks the view's layer from a [nlay][nrow][ncol] array
func (o *MapView) PlotArray3d(a [][][]float64, args *ArrayArgs) {
	chk.IntAssert(len(a), o.Grid.Nlay)
	o.PlotArray(a[o.Layer], args)
}

// ContourArray draws labeled line contours of a over the cell centers
func (o *MapView) ContourArray(a [][]float64, args *plt.A) {
	chk.IntAssert(len(a), o.Grid.Nrow)
	args = defaultA(args, plt.A{Colors: []string{"#3255c2"}, Lw: 1})
	X, Y := o.Grid.Centers()
	plt.ContourL(X, Y, a, args)
}

// ContourArray3d picks the view's layer from a full array
func (o *MapView) ContourArray3d(a [][][]float64, args *plt.A) {
	chk.IntAssert(len(a), o.Grid.Nlay)
	o.ContourArray(a[o.Layer], args)
}

// Discharge computes cell-center flow vectors of the view's layer by
// averaging the volumetric face flows onto centers. The front-face sign is
// flipped to point along -y and the grid rotation is applied. Values stay
// volumetric; they are not divided by the face areas.
func (o *MapView) Discharge(frf, fff [][][]float64, istep, jstep int) (X, Y, U, V [][]float64) {
	g := o.Grid
	k := o.Layer
	nI := (g.Nrow + istep - 1) / istep
	nJ := (g.Ncol + jstep - 1) / jstep
	X = utl.Alloc(nI, nJ)
	Y = utl.Alloc(nI, nJ)
	U = utl.Alloc(nI, nJ)
	V = utl.Alloc(nI, nJ)
	XC, YC := g.Centers()
	θ := g.Rot * math.Pi / 180.0
	c, s := math.Cos(θ), math.Sin(θ)
	for ii := 0; ii < nI; ii++ {
		for jj := 0; jj < nJ; jj++ {
			i, j := ii*istep, jj*jstep
			X[ii][jj] = XC[i][j]
			Y[ii][jj] = YC[i][j]
			if o.Ibound != nil && o.Ibound[k][i][j] <= 0 {
				continue // inactive and constant-head cells carry no vector
			}
			u := 0.5 * frf[k][i][j]
			if j > 0 {
				u = 0.5 * (frf[k][i][j-1] + frf[k][i][j])
			}
			v := -0.5 * fff[k][i][j]
			if i > 0 {
				v = -0.5 * (fff[k][i-1][j] + fff[k][i][j])
			}
			U[ii][jj] = u*c - v*s
			V[ii][jj] = u*s + v*c
		}
	}
	return
}

// PlotDischarge draws the averaged face-flow vector field of the view's
// layer. istep and jstep subsample the grid (1 plots every cell).
func (o *MapView) PlotDischarge(frf, fff [][][]float64, istep, jstep int, args *plt.A) {
	if istep < 1 {
		istep = 1
	}
	if jstep < 1 {
		jstep = 1
	}
	chk.IntAssert(len(frf), o.Grid.Nlay)
	chk.IntAssert(len(fff), o.Grid.Nlay)
	args = defaultA(args, plt.A{C: "k"})
	X, Y, U, V := o.Discharge(frf, fff, istep, jstep)
	plt.Quiver(X, Y, U, V, args)
}

// PlotShapefile overlays the features of a shapefile layer, styling each
// feature from its attributes with def as the fallback
func (o *MapView) PlotShapefile(layer *gis.Layer, def gis.Style) {
	for _, f := range layer.Features {
		sty := gis.StyleFromAttrs(f.Attrs, def)
		paths, closed := gis.Paths(f.Geom)
		for n, P := range paths {
			if len(P) == 1 {
				plt.PlotOne(P[0][0], P[0][1], &plt.A{C: sty.Color, M: "o"})
				continue
			}
			if closed[n] {
				plt.Polyline(P, &plt.A{Ec: sty.Color, Fc: sty.Fc, Lw: sty.Lw, Closed: true})
				continue
			}
			x := make([]float64, len(P))
			y := make([]float64, len(P))
			for m, pt := range P {
				x[m], y[m] = pt[0], pt[1]
			}
			plt.Plot(x, y, &plt.A{C: sty.Color, Lw: sty.Lw})
		}
	}
}

// Extent returns the world-coordinate bounding box, for axis limits
func (o *MapView) Extent() (xmin, xmax, ymin, ymax float64) {
	return o.Grid.Extent()
}

// eachCell visits every cell of the view's layer with its patch corners in
// world coordinates (closed counter-clockwise)
func (o *MapView) eachCell(visit func(i, j int, P [][]float64)) {
	X, Y := o.Grid.Vertices()
	for i := 0; i < o.Grid.Nrow; i++ {
		for j := 0; j < o.Grid.Ncol; j++ {
			P := [][]float64{
				{X[i][j], Y[i][j]},
				{X[i][j+1], Y[i][j+1]},
				{X[i+1][j+1], Y[i+1][j+1]},
				{X[i+1][j], Y[i+1][j]},
			}
			visit(i, j, P)
		}
	}
}
