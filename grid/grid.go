// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the structured (row-column-layer) discretization of
// a groundwater model, including the local-to-world coordinate transform
// defined by an upper-left offset and a rotation about that corner
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the finite-difference discretization of a model domain.
// Rows run along y (row 0 at the top edge), columns along x.
type Grid struct {

	// dimensions
	Nlay int // number of layers
	Nrow int // number of rows
	Ncol int // number of columns

	// spacing and elevations
	Delr []float64     // [ncol] column widths (along a row)
	Delc []float64     // [nrow] row heights (along a column)
	Top  [][]float64   // [nrow][ncol] top elevation of layer 0
	Botm [][][]float64 // [nlay][nrow][ncol] bottom elevation of each layer

	// placement of the upper-left corner in world coordinates
	Xul float64 // x of upper-left corner
	Yul float64 // y of upper-left corner
	Rot float64 // rotation about upper-left corner; counter-clockwise [degrees]
}

// New returns a grid after checking dimension consistency
func New(nlay, nrow, ncol int, delr, delc []float64, top [][]float64, botm [][][]float64) (o *Grid, err error) {
	if len(delr) != ncol {
		return nil, chk.Err("len(delr)=%d must equal ncol=%d", len(delr), ncol)
	}
	if len(delc) != nrow {
		return nil, chk.Err("len(delc)=%d must equal nrow=%d", len(delc), nrow)
	}
	if botm != nil && len(botm) != nlay {
		return nil, chk.Err("botm has %d layers but nlay=%d", len(botm), nlay)
	}
	o = &Grid{Nlay: nlay, Nrow: nrow, Ncol: ncol, Delr: delr, Delc: delc, Top: top, Botm: botm}
	return
}

// NewUniform returns a grid with constant spacing and flat layer elevations.
// elevs has nlay+1 values, from the top of layer 0 down to the bottom of the
// last layer.
func NewUniform(nlay, nrow, ncol int, dr, dc float64, elevs []float64) (o *Grid) {
	chk.IntAssert(len(elevs), nlay+1)
	delr := make([]float64, ncol)
	delc := make([]float64, nrow)
	for j := 0; j < ncol; j++ {
		delr[j] = dr
	}
	for i := 0; i < nrow; i++ {
		delc[i] = dc
	}
	top := utl.Alloc(nrow, ncol)
	botm := utl.Deep3alloc(nlay, nrow, ncol)
	for i := 0; i < nrow; i++ {
		for j := 0; j < ncol; j++ {
			top[i][j] = elevs[0]
			for k := 0; k < nlay; k++ {
				botm[k][i][j] = elevs[k+1]
			}
		}
	}
	o, err := New(nlay, nrow, ncol, delr, delc, top, botm)
	if err != nil {
		chk.Panic("cannot allocate uniform grid:\n%v", err)
	}
	return
}

// SetOffset sets the world coordinates of the upper-left corner and the
// rotation (counter-clockwise, degrees) about that corner
func (o *Grid) SetOffset(xul, yul, rot float64) {
	o.Xul = xul
	o.Yul = yul
	o.Rot = rot
}

// Xedges returns the [ncol+1] local x coordinates of column edges,
// starting at 0 and increasing along a row
func (o *Grid) Xedges() (x []float64) {
	x = make([]float64, o.Ncol+1)
	for j := 0; j < o.Ncol; j++ {
		x[j+1] = x[j] + o.Delr[j]
	}
	return
}

// Yedges returns the [nrow+1] local y coordinates of row edges, starting at 0
// at the top edge and decreasing downwards (row-major convention)
func (o *Grid) Yedges() (y []float64) {
	y = make([]float64, o.Nrow+1)
	for i := 0; i < o.Nrow; i++ {
		y[i+1] = y[i] - o.Delc[i]
	}
	return
}

// Xcenters returns the [ncol] local x coordinates of cell centers
func (o *Grid) Xcenters() (x []float64) {
	x = make([]float64, o.Ncol)
	var left float64
	for j := 0; j < o.Ncol; j++ {
		x[j] = left + o.Delr[j]/2.0
		left += o.Delr[j]
	}
	return
}

// Ycenters returns the [nrow] local y coordinates of cell centers
func (o *Grid) Ycenters() (y []float64) {
	y = make([]float64, o.Nrow)
	var top float64
	for i := 0; i < o.Nrow; i++ {
		y[i] = top - o.Delc[i]/2.0
		top -= o.Delc[i]
	}
	return
}

// Transform converts local grid coordinates to world coordinates, rotating
// about the upper-left corner and then translating to (Xul, Yul)
func (o *Grid) Transform(x, y float64) (X, Y float64) {
	if o.Rot == 0 {
		return x + o.Xul, y + o.Yul
	}
	θ := o.Rot * math.Pi / 180.0
	c, s := math.Cos(θ), math.Sin(θ)
	X = o.Xul + x*c - y*s
	Y = o.Yul + x*s + y*c
	return
}

// Vertices returns the [nrow+1][ncol+1] world coordinates of cell corners
func (o *Grid) Vertices() (X, Y [][]float64) {
	xe, ye := o.Xedges(), o.Yedges()
	X = utl.Alloc(o.Nrow+1, o.Ncol+1)
	Y = utl.Alloc(o.Nrow+1, o.Ncol+1)
	for i := 0; i <= o.Nrow; i++ {
		for j := 0; j <= o.Ncol; j++ {
			X[i][j], Y[i][j] = o.Transform(xe[j], ye[i])
		}
	}
	return
}

// Centers returns the [nrow][ncol] world coordinates of cell centers
func (o *Grid) Centers() (X, Y [][]float64) {
	xc, yc := o.Xcenters(), o.Ycenters()
	X = utl.Alloc(o.Nrow, o.Ncol)
	Y = utl.Alloc(o.Nrow, o.Ncol)
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			X[i][j], Y[i][j] = o.Transform(xc[j], yc[i])
		}
	}
	return
}

// Extent returns the world-coordinate bounding box of the grid
func (o *Grid) Extent() (xmin, xmax, ymin, ymax float64) {
	X, Y := o.Vertices()
	xmin, xmax = X[0][0], X[0][0]
	ymin, ymax = Y[0][0], Y[0][0]
	for i := range X {
		for j := range X[i] {
			xmin = math.Min(xmin, X[i][j])
			xmax = math.Max(xmax, X[i][j])
			ymin = math.Min(ymin, Y[i][j])
			ymax = math.Max(ymax, Y[i][j])
		}
	}
	return
}

// CellTop returns the top elevation of cell (k,i,j); for k > 0 this is the
// bottom of the layer above
func (o *Grid) CellTop(k, i, j int) float64 {
	if k == 0 {
		return o.Top[i][j]
	}
	return o.Botm[k-1][i][j]
}

// Thickness returns the [nrow][ncol] thickness of layer k
func (o *Grid) Thickness(k int) (t [][]float64) {
	t = utl.Alloc(o.Nrow, o.Ncol)
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			t[i][j] = o.CellTop(k, i, j) - o.Botm[k][i][j]
		}
	}
	return
}
