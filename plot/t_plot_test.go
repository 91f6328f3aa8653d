// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/echristi/gwplot/grid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// demoIbound builds a 1-layer boundary array with one inactive and one
// constant-head cell
func demoIbound(nrow, ncol int) (ib [][][]int) {
	ib = make([][][]int, 1)
	ib[0] = make([][]int, nrow)
	for i := 0; i < nrow; i++ {
		ib[0][i] = make([]int, ncol)
		for j := 0; j < ncol; j++ {
			ib[0][i][j] = 1
		}
	}
	ib[0][0][0] = 0
	ib[0][nrow-1][ncol-1] = -1
	return
}

func Test_cmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmap01. color ramp selection")

	cmap := []string{"a", "b", "c", "d"}
	chk.String(tst, cmapColor(0, 0, 1, cmap), "a")
	chk.String(tst, cmapColor(1, 0, 1, cmap), "d")
	chk.String(tst, cmapColor(0.40, 0, 1, cmap), "b")
	chk.String(tst, cmapColor(-5, 0, 1, cmap), "a")
	chk.String(tst, cmapColor(50, 0, 1, cmap), "d")
	chk.String(tst, cmapColor(3, 3, 3, cmap), "a") // degenerate range
}

func Test_args01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("args01. array range with masked values")

	a := [][]float64{
		{1, 2, 999},
		{3, math.NaN(), 4},
	}
	args := &ArrayArgs{Masked: []float64{999}}
	vmin, vmax := args.rng(a)
	chk.Float64(tst, "vmin", 1e-15, vmin, 1)
	chk.Float64(tst, "vmax", 1e-15, vmax, 4)

	args = &ArrayArgs{Vmin: -10, Vmax: 10}
	vmin, vmax = args.rng(a)
	chk.Float64(tst, "fixed vmin", 1e-15, vmin, -10)
	chk.Float64(tst, "fixed vmax", 1e-15, vmax, 10)

	var none *ArrayArgs
	vmin, vmax = none.rng([][]float64{{7, 9}})
	chk.Float64(tst, "nil args vmin", 1e-15, vmin, 7)
	chk.Float64(tst, "nil args vmax", 1e-15, vmax, 9)
}

func Test_map01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("map01. discharge vectors")

	g := grid.NewUniform(1, 2, 3, 100, 100, []float64{0, -10})
	mv := NewMapView(g, demoIbound(2, 3), 0, 0, 0, 0)

	// rightward face flows of 2 everywhere, front flows of 1
	frf := [][][]float64{{{2, 2, 2}, {2, 2, 2}}}
	fff := [][][]float64{{{1, 1, 1}, {1, 1, 1}}}

	X, Y, U, V := mv.Discharge(frf, fff, 1, 1)
	chk.IntAssert(len(U), 2)
	chk.IntAssert(len(U[0]), 3)

	// cell (0,0) is inactive: no vector
	chk.Float64(tst, "u at inactive cell", 1e-15, U[0][0], 0)
	chk.Float64(tst, "v at inactive cell", 1e-15, V[0][0], 0)

	// interior cell (1,1): u = avg(2,2) = 2; v = -avg(1,1) = -1
	chk.Float64(tst, "u interior", 1e-15, U[1][1], 2)
	chk.Float64(tst, "v interior", 1e-15, V[1][1], -1)

	// centers in world coordinates
	chk.Float64(tst, "x of (1,1)", 1e-15, X[1][1], 150)
	chk.Float64(tst, "y of (1,1)", 1e-15, Y[1][1], -150)
}

func Test_map02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("map02. discharge rotates with the grid")

	g := grid.NewUniform(1, 1, 2, 10, 10, []float64{0, -10})
	mv := NewMapView(g, nil, 0, 0, 0, 90)

	frf := [][][]float64{{{4, 4}}}
	fff := [][][]float64{{{0, 0}}}
	_, _, U, V := mv.Discharge(frf, fff, 1, 1)

	// a +x vector rotated 90° ccw points along +y
	chk.Float64(tst, "u rotated", 1e-13, U[0][1], 0)
	chk.Float64(tst, "v rotated", 1e-13, V[0][1], 4)
}

func Test_map03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("map03. map plotting calls")

	g := grid.NewUniform(1, 2, 3, 100, 100, []float64{0, -10})
	mv := NewMapView(g, demoIbound(2, 3), 0, 500, 800, 14)

	a := [][]float64{{1, 2, 3}, {4, 5, 1e30}}
	plt.Reset(false, nil)
	mv.PlotGrid(nil)
	mv.PlotIbound("", "")
	mv.PlotArray(a, &ArrayArgs{Masked: []float64{1e30}})
	mv.ContourArray(a, nil)
	if chk.Verbose {
		plt.Save("/tmp/gwplot", "test_map03")
	}
}

func Test_xsec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("xsec01. section geometry")

	g, err := grid.New(2, 2, 3,
		[]float64{100, 200, 300},
		[]float64{50, 50},
		[][]float64{{10, 10, 10}, {10, 10, 10}},
		[][][]float64{
			{{0, 0, 0}, {0, 0, 0}},
			{{-20, -20, -20}, {-20, -20, -20}},
		})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	xs := NewCrossSection(g, nil, AlongRow(1))
	xmin, xmax, ymin, ymax := xs.Extent()
	chk.Float64(tst, "xmin", 1e-15, xmin, 0)
	chk.Float64(tst, "xmax", 1e-15, xmax, 600)
	chk.Float64(tst, "ymin", 1e-15, ymin, -20)
	chk.Float64(tst, "ymax", 1e-15, ymax, 10)

	// patch of layer 1, second cell: x in [100,300], z in [-20,0]
	P := xs.patch(1, 1)
	chk.Array(tst, "corner 0", 1e-15, P[0], []float64{100, -20})
	chk.Array(tst, "corner 2", 1e-15, P[2], []float64{300, 0})

	// a column section uses delc for distances
	xc := NewCrossSection(g, nil, AlongCol(0))
	_, xmax, _, _ = xc.Extent()
	chk.Float64(tst, "column section length", 1e-15, xmax, 100)
}

func Test_xsec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("xsec02. section plotting calls")

	g := grid.NewUniform(2, 2, 4, 250, 250, []float64{10, 0, -40})
	ib := [][][]int{demoIbound(2, 4)[0], demoIbound(2, 4)[0]}
	xs := NewCrossSection(g, ib, AlongRow(0))

	a := [][][]float64{
		{{5, 5, 4, 4}, {5, 5, 4, 4}},
		{{3, 3, 2, 2}, {3, 3, 2, 2}},
	}
	plt.Reset(false, nil)
	xs.PlotGrid(nil)
	xs.PlotIbound("", "")
	xs.PlotArray(a, nil)
	xs.ContourArray(a, nil)
	xs.PlotSurface(a, nil)
	if chk.Verbose {
		plt.Save("/tmp/gwplot", "test_xsec02")
	}
}

func Test_styles01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("styles01. style file loading")

	y := []byte(`
grid:
  c: "#cccccc"
  lw: 0.4
contours:
  levels: [10, 20, 30]
  lw: 1.2
heads:
  cmap: ["#000000", "#ffffff"]
`)
	path := filepath.Join(tst.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, y, 0644); err != nil {
		tst.Fatalf("cannot write style file: %v", err)
	}

	sty, err := LoadStyles(path)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	gridSty, ok := sty.Get("grid")
	if !ok {
		tst.Errorf("grid style is missing")
		return
	}
	chk.String(tst, gridSty.C, "#cccccc")
	chk.Float64(tst, "grid lw", 1e-15, gridSty.Lw, 0.4)

	args := sty.ArgsFor("contours")
	chk.Array(tst, "contour levels", 1e-15, args.Levels, []float64{10, 20, 30})

	if sty.ArgsFor("missing") != nil {
		tst.Errorf("missing style must give nil args")
	}
}
