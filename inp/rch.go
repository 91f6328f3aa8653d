// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Recharge option codes (NRCHOP)
const (
	RchTopLayer      = 1 // recharge applied to the top grid layer only
	RchSpecifiedLay  = 2 // recharge applied to the layer given in IRCH
	RchHighestActive = 3 // recharge applied to the highest active cell
)

// Rch holds the recharge (RCH) package data
type Rch struct {
	Nrchop int           // recharge option code (1, 2 or 3)
	Ipakcb int           // cell-by-cell budget flag/unit
	Rech   [][][]float64 // [nper][nrow][ncol] recharge flux per stress period
	Irch   [][][]int     // [nper][nrow][ncol] recharge layer (one-based); only when Nrchop==2
}

// ReadRch reads an RCH package file. A negative INRECH (or INIRCH) record
// entry reuses the array of the previous stress period.
func ReadRch(path string, nper, nrow, ncol int) (o *Rch, err error) {
	r, err := newRdr(path)
	if err != nil {
		return nil, err
	}
	o = new(Rch)

	// item 2: NRCHOP IPAKCB
	toks, err := r.nextTokens()
	if err != nil {
		return nil, chk.Err("cannot read NRCHOP record:\n%v", err)
	}
	if strings.EqualFold(toks[0], "PARAMETER") {
		return nil, chk.Err("%s: RCH parameters are not supported", path)
	}
	o.Nrchop, err = strconv.Atoi(toks[0])
	if err != nil {
		return nil, chk.Err("%s: bad NRCHOP value %q", path, toks[0])
	}
	if o.Nrchop < RchTopLayer || o.Nrchop > RchHighestActive {
		return nil, chk.Err("%s: NRCHOP must be 1, 2 or 3; got %d", path, o.Nrchop)
	}
	if len(toks) > 1 {
		o.Ipakcb, _ = strconv.Atoi(toks[1])
	}

	// per stress period: INRECH [INIRCH] then arrays
	o.Rech = make([][][]float64, nper)
	if o.Nrchop == RchSpecifiedLay {
		o.Irch = make([][][]int, nper)
	}
	var curRech [][]float64
	var curIrch [][]int
	for p := 0; p < nper; p++ {
		toks, err = r.nextTokens()
		if err != nil {
			return nil, chk.Err("cannot read INRECH record of period %d:\n%v", p+1, err)
		}
		inrech, err := strconv.Atoi(toks[0])
		if err != nil {
			return nil, chk.Err("%s: bad INRECH value %q in period %d", path, toks[0], p+1)
		}
		inirch := -1
		if o.Nrchop == RchSpecifiedLay {
			if len(toks) < 2 {
				return nil, chk.Err("%s: period %d needs INIRCH when NRCHOP=2", path, p+1)
			}
			inirch, err = strconv.Atoi(toks[1])
			if err != nil {
				return nil, chk.Err("%s: bad INIRCH value %q in period %d", path, toks[1], p+1)
			}
		}
		if inrech >= 0 {
			curRech, err = r.readArray2d(nrow, ncol)
			if err != nil {
				return nil, chk.Err("cannot read RECH array of period %d:\n%v", p+1, err)
			}
		} else if curRech == nil {
			return nil, chk.Err("%s: period 1 cannot reuse a previous RECH array", path)
		}
		o.Rech[p] = curRech
		if o.Nrchop == RchSpecifiedLay {
			if inirch >= 0 {
				curIrch, err = r.readIntArray2d(nrow, ncol)
				if err != nil {
					return nil, chk.Err("cannot read IRCH array of period %d:\n%v", p+1, err)
				}
			} else if curIrch == nil {
				return nil, chk.Err("%s: period 1 cannot reuse a previous IRCH array", path)
			}
			o.Irch[p] = curIrch
		}
	}
	return
}

// Write writes the RCH package file using the fixed record layout
func (o *Rch) Write(path string) (err error) {
	var b strings.Builder
	b.WriteString("# RCH for MODFLOW, generated by gwplot.\n")
	b.WriteString(io.Sf("%10d%10d\n", o.Nrchop, o.Ipakcb))
	prev := -1
	for p := range o.Rech {
		inrech := 0
		if p > 0 && sameArray(o.Rech[p], o.Rech[prev]) {
			inrech = -1
		}
		inirch := -1
		if o.Nrchop == RchSpecifiedLay {
			inirch = 0
			if p > 0 && sameIntArray(o.Irch[p], o.Irch[prev]) {
				inirch = -1
			}
		}
		b.WriteString(io.Sf("%10d%10d # %s\n", inrech, inirch, io.Sf("Stress period %d", p+1)))
		if inrech >= 0 {
			writeArray2d(&b, o.Rech[p])
		}
		if o.Nrchop == RchSpecifiedLay && inirch >= 0 {
			writeIntArray2d(&b, o.Irch[p])
		}
		prev = p
	}
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return chk.Err("cannot create output directory: %v", err)
	}
	if err = os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return chk.Err("cannot write RCH file: %v", err)
	}
	return
}

func writeArray2d(b *strings.Builder, a [][]float64) {
	b.WriteString("INTERNAL 1.0 (FREE) -1\n")
	for _, row := range a {
		for j, v := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(io.Sf("%g", v))
		}
		b.WriteString("\n")
	}
}

func writeIntArray2d(b *strings.Builder, a [][]int) {
	b.WriteString("INTERNAL 1 (FREE) -1\n")
	for _, row := range a {
		for j, v := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(io.Sf("%d", v))
		}
		b.WriteString("\n")
	}
}

func sameArray(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func sameIntArray(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
