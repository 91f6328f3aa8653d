// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/echristi/gwplot/grid"
)

// Dis holds the discretization (DIS) package data
type Dis struct {

	// dimensions and units
	Nper   int // number of stress periods
	Itmuni int // time unit code
	Lenuni int // length unit code

	// grid
	Grid   *grid.Grid // spatial discretization
	Laycbd []int      // [nlay] confining bed flags

	// stress periods
	Perlen []float64 // [nper] period lengths
	Nstp   []int     // [nper] time steps per period
	Tsmult []float64 // [nper] time step multipliers
	Steady []bool    // [nper] steady-state flags
}

// ReadDis reads a DIS package file
func ReadDis(path string) (o *Dis, err error) {
	r, err := newRdr(path)
	if err != nil {
		return nil, err
	}

	// item 1: NLAY NROW NCOL NPER ITMUNI LENUNI
	v, err := r.ints(6)
	if err != nil {
		return nil, chk.Err("cannot read DIS dimensions:\n%v", err)
	}
	nlay, nrow, ncol := v[0], v[1], v[2]
	o = &Dis{Nper: v[3], Itmuni: v[4], Lenuni: v[5]}

	// item 2: LAYCBD
	o.Laycbd, err = r.ints(nlay)
	if err != nil {
		return nil, chk.Err("cannot read LAYCBD:\n%v", err)
	}

	// items 3-4: DELR, DELC
	delr, err := r.readArray1d(ncol)
	if err != nil {
		return nil, chk.Err("cannot read DELR:\n%v", err)
	}
	delc, err := r.readArray1d(nrow)
	if err != nil {
		return nil, chk.Err("cannot read DELC:\n%v", err)
	}

	// item 5: TOP
	top, err := r.readArray2d(nrow, ncol)
	if err != nil {
		return nil, chk.Err("cannot read TOP:\n%v", err)
	}

	// item 6: BOTM per layer, plus one extra array under each confining bed
	botm := make([][][]float64, nlay)
	for k := 0; k < nlay; k++ {
		botm[k], err = r.readArray2d(nrow, ncol)
		if err != nil {
			return nil, chk.Err("cannot read BOTM of layer %d:\n%v", k, err)
		}
		if o.Laycbd[k] != 0 {
			if _, err = r.readArray2d(nrow, ncol); err != nil {
				return nil, chk.Err("cannot read confining bed below layer %d:\n%v", k, err)
			}
		}
	}

	o.Grid, err = grid.New(nlay, nrow, ncol, delr, delc, top, botm)
	if err != nil {
		return nil, err
	}

	// item 7: PERLEN NSTP TSMULT Ss/tr
	o.Perlen = make([]float64, o.Nper)
	o.Nstp = make([]int, o.Nper)
	o.Tsmult = make([]float64, o.Nper)
	o.Steady = make([]bool, o.Nper)
	for p := 0; p < o.Nper; p++ {
		toks, err := r.nextTokens()
		if err != nil {
			return nil, chk.Err("cannot read stress period %d:\n%v", p+1, err)
		}
		if len(toks) < 4 {
			return nil, chk.Err("%s: stress period %d record needs 4 entries", path, p+1)
		}
		f, e1 := parseFloats(toks[:3])
		if e1 != nil {
			return nil, chk.Err("%s: bad stress period %d record: %v", path, p+1, e1)
		}
		o.Perlen[p] = f[0]
		o.Nstp[p] = int(f[1])
		o.Tsmult[p] = f[2]
		o.Steady[p] = strings.EqualFold(toks[3], "SS")
	}
	return
}
