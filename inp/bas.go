// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Bas holds the basic (BAS6) package data
type Bas struct {
	Options []string      // option keywords (FREE, XSECTION, CHTOCH, ...)
	Ibound  [][][]int     // [nlay][nrow][ncol] boundary array: <0 constant head, 0 inactive, >0 active
	Hnoflo  float64       // head assigned to inactive cells
	Strt    [][][]float64 // [nlay][nrow][ncol] starting heads
}

// basOptions are the keywords allowed on the BAS6 options line
var basOptions = map[string]bool{
	"XSECTION":     true,
	"CHTOCH":       true,
	"FREE":         true,
	"PRINTTIME":    true,
	"SHOWPROGRESS": true,
	"STOPERROR":    true,
}

// ReadBas reads a BAS6 package file. The grid dimensions come from the
// already-read DIS package.
func ReadBas(path string, nlay, nrow, ncol int) (o *Bas, err error) {
	r, err := newRdr(path)
	if err != nil {
		return nil, err
	}
	o = new(Bas)

	// item 1: options. An options line is optional in practice; when the
	// first record is not made of known keywords it is the IBOUND control
	// record and must be pushed back.
	toks, err := r.nextTokens()
	if err != nil {
		return nil, chk.Err("cannot read BAS6 options:\n%v", err)
	}
	if basOptions[strings.ToUpper(toks[0])] {
		for _, t := range toks {
			o.Options = append(o.Options, strings.ToUpper(t))
		}
	} else {
		r.pos-- // push the line back
	}

	// item 2: IBOUND per layer
	o.Ibound = make([][][]int, nlay)
	for k := 0; k < nlay; k++ {
		o.Ibound[k], err = r.readIntArray2d(nrow, ncol)
		if err != nil {
			return nil, chk.Err("cannot read IBOUND of layer %d:\n%v", k, err)
		}
	}

	// item 3: HNOFLO
	toks, err = r.nextTokens()
	if err != nil {
		return nil, chk.Err("cannot read HNOFLO:\n%v", err)
	}
	o.Hnoflo, err = strconv.ParseFloat(toks[0], 64)
	if err != nil {
		return nil, chk.Err("%s: bad HNOFLO value %q", path, toks[0])
	}

	// item 4: STRT per layer
	o.Strt = make([][][]float64, nlay)
	for k := 0; k < nlay; k++ {
		o.Strt[k], err = r.readArray2d(nrow, ncol)
		if err != nil {
			return nil, chk.Err("cannot read STRT of layer %d:\n%v", k, err)
		}
	}
	return
}

// HasOption tells whether a keyword appeared on the options line
func (o *Bas) HasOption(name string) bool {
	name = strings.ToUpper(name)
	for _, opt := range o.Options {
		if opt == name {
			return true
		}
	}
	return false
}
