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
	"github.com/cpmech/gosl/utl"
)

// rdr walks the lines of a model input file keeping track of position for
// error messages. Comment lines (starting with '#') and blank lines are
// skipped; numeric records may continue over any number of lines.
type rdr struct {
	path string   // file being read
	lns  []string // all lines
	pos  int      // index of next line
	toks []string // leftover tokens of the current numeric record
}

// newRdr reads the whole file; model input files are small
func newRdr(path string) (o *rdr, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot open input file: %v", err)
	}
	o = &rdr{path: path, lns: strings.Split(string(b), "\n")}
	return
}

// nextLine returns the next non-blank, non-comment line
func (o *rdr) nextLine() (string, error) {
	for o.pos < len(o.lns) {
		s := strings.TrimSpace(o.lns[o.pos])
		o.pos++
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		return s, nil
	}
	return "", chk.Err("%s: unexpected end of file at line %d", o.path, o.pos)
}

// nextTokens returns the fields of the next line
func (o *rdr) nextTokens() ([]string, error) {
	s, err := o.nextLine()
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

// nextFloat pulls one number from the record stream, continuing onto
// following lines when the current one is exhausted
func (o *rdr) nextFloat() (float64, error) {
	for len(o.toks) == 0 {
		t, err := o.nextTokens()
		if err != nil {
			return 0, err
		}
		o.toks = t
	}
	s := o.toks[0]
	o.toks = o.toks[1:]
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, chk.Err("%s: cannot parse number %q near line %d", o.path, s, o.pos)
	}
	return v, nil
}

// floats reads n numbers from the record stream
func (o *rdr) floats(n int) (v []float64, err error) {
	v = make([]float64, n)
	for i := 0; i < n; i++ {
		v[i], err = o.nextFloat()
		if err != nil {
			return nil, err
		}
	}
	o.toks = nil // a record never shares its last line with the next one
	return
}

// ints reads n integers from the record stream
func (o *rdr) ints(n int) (v []int, err error) {
	f, err := o.floats(n)
	if err != nil {
		return nil, err
	}
	v = make([]int, n)
	for i, x := range f {
		v[i] = int(x)
	}
	return
}

// readArray1d reads a 1D array given its control record:
//
//	CONSTANT cnstnt
//	INTERNAL cnstnt (FREE) iprn
//	OPEN/CLOSE fname cnstnt (FREE) iprn
//
// The multiplier cnstnt is applied to every value; following the MODFLOW
// convention a zero multiplier means one.
func (o *rdr) readArray1d(n int) (v []float64, err error) {
	toks, err := o.nextTokens()
	if err != nil {
		return nil, err
	}
	key := strings.ToUpper(toks[0])
	switch key {

	case "CONSTANT":
		if len(toks) < 2 {
			return nil, chk.Err("%s: CONSTANT record needs a value near line %d", o.path, o.pos)
		}
		c, err := strconv.ParseFloat(toks[1], 64)
		if err != nil {
			return nil, chk.Err("%s: bad CONSTANT value %q near line %d", o.path, toks[1], o.pos)
		}
		v = make([]float64, n)
		for i := range v {
			v[i] = c
		}
		return v, nil

	case "INTERNAL":
		c := mult(toks, 1)
		v, err = o.floats(n)
		if err != nil {
			return nil, err
		}
		scale(v, c)
		return v, nil

	case "OPEN/CLOSE":
		if len(toks) < 2 {
			return nil, chk.Err("%s: OPEN/CLOSE record needs a filename near line %d", o.path, o.pos)
		}
		c := mult(toks, 2)
		ext, err := newRdr(filepath.Join(filepath.Dir(o.path), toks[1]))
		if err != nil {
			return nil, err
		}
		v, err = ext.floats(n)
		if err != nil {
			return nil, err
		}
		scale(v, c)
		return v, nil
	}
	return nil, chk.Err("%s: unknown array control record %q near line %d", o.path, key, o.pos)
}

// readArray2d reads an (nrow,ncol) array after its control record
func (o *rdr) readArray2d(nrow, ncol int) (a [][]float64, err error) {
	flat, err := o.readArray1d(nrow * ncol)
	if err != nil {
		return nil, err
	}
	a = utl.Alloc(nrow, ncol)
	for i := 0; i < nrow; i++ {
		copy(a[i], flat[i*ncol:(i+1)*ncol])
	}
	return
}

// readIntArray2d reads an (nrow,ncol) integer array (e.g. IBOUND, IRCH)
func (o *rdr) readIntArray2d(nrow, ncol int) (a [][]int, err error) {
	f, err := o.readArray2d(nrow, ncol)
	if err != nil {
		return nil, err
	}
	a = make([][]int, nrow)
	for i := 0; i < nrow; i++ {
		a[i] = make([]int, ncol)
		for j := 0; j < ncol; j++ {
			a[i][j] = int(f[i][j])
		}
	}
	return
}

// parseFloats converts a slice of tokens to numbers
func parseFloats(toks []string) (v []float64, err error) {
	v = make([]float64, len(toks))
	for i, s := range toks {
		v[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
	}
	return
}

// mult extracts the multiplier at position k of a control record
func mult(toks []string, k int) float64 {
	if len(toks) <= k {
		return 1
	}
	c, err := strconv.ParseFloat(toks[k], 64)
	if err != nil || c == 0 {
		return 1
	}
	return c
}

func scale(v []float64, c float64) {
	if c == 1 {
		return
	}
	for i := range v {
		v[i] *= c
	}
}
