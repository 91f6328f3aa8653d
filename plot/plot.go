// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plot implements the two plotting objects of the toolkit: the map
// view (plan view of one layer) and the cross-section view (vertical slice
// along a row or column). Both render through gosl/plt; this package only
// prepares coordinates, patches and styles.
package plot

import (
	"math"

	"github.com/cpmech/gosl/plt"
)

// DefaultCmap is the color ramp used by PlotArray when none is given
var DefaultCmap = []string{
	"#440154", "#46327e", "#365c8d", "#277f8e", "#1fa187",
	"#4ac16d", "#a0da39", "#fde725",
}

// ArrayArgs holds optional parameters for PlotArray
type ArrayArgs struct {
	Vmin   float64   // lower color limit; ignored when Vmin==Vmax
	Vmax   float64   // upper color limit
	Cmap   []string  // color ramp
	Masked []float64 // values to skip (e.g. hnoflo, hdry)
	Alpha  float64   // opacity; 0 means opaque
}

// rng returns the color limits, computing them from the data when not set
func (o *ArrayArgs) rng(a [][]float64) (vmin, vmax float64) {
	if o != nil && o.Vmin != o.Vmax {
		return o.Vmin, o.Vmax
	}
	first := true
	for i := range a {
		for j := range a[i] {
			v := a[i][j]
			if math.IsNaN(v) || o.isMasked(v) {
				continue
			}
			if first {
				vmin, vmax = v, v
				first = false
				continue
			}
			vmin = math.Min(vmin, v)
			vmax = math.Max(vmax, v)
		}
	}
	return
}

func (o *ArrayArgs) cmap() []string {
	if o != nil && len(o.Cmap) > 0 {
		return o.Cmap
	}
	return DefaultCmap
}

func (o *ArrayArgs) isMasked(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	if o == nil {
		return false
	}
	for _, m := range o.Masked {
		if v == m {
			return true
		}
	}
	return false
}

// cmapColor picks the ramp color of a value within [vmin,vmax]
func cmapColor(v, vmin, vmax float64, cmap []string) string {
	if vmax <= vmin {
		return cmap[0]
	}
	f := (v - vmin) / (vmax - vmin)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	k := int(f * float64(len(cmap)-1))
	if k == len(cmap)-1 {
		return cmap[len(cmap)-1]
	}
	return cmap[k]
}

// fillPoly draws a filled cell patch
func fillPoly(P [][]float64, fc string, alpha float64) {
	a := &plt.A{Fc: fc, Ec: "none", Closed: true}
	if alpha > 0 {
		a.A = alpha
	}
	plt.Polyline(P, a)
}

// defaultA returns args or a default when nil
func defaultA(args *plt.A, def plt.A) *plt.A {
	if args == nil {
		return &def
	}
	return args
}
