// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Budget record storage methods (IMETH) of the compact form
const (
	imethFull3d    = 1 // full 3D array
	imethList      = 2 // list of (icell, q)
	imethLayerInd  = 3 // layer-indicator array plus 2D array
	imethTopLayer  = 4 // 2D array for the top layer
	imethListAux   = 5 // list of (icell, q, aux...)
)

// BudgetRecord holds one flow term at one time step
type BudgetRecord struct {
	Kstp  int           // time step (one-based)
	Kper  int           // stress period (one-based)
	Text  string        // flow term; e.g. "FLOW RIGHT FACE"
	Imeth int           // storage method; 0 for the classic (non-compact) form
	Delt  float64       // time step length (compact form only)
	Totim float64       // total time (compact form only; -1 when absent)
	Data  [][][]float64 // [nlay][nrow][ncol] values scattered into the grid shape
}

// CellBudget holds all records of a cell-by-cell budget file
type CellBudget struct {
	Path      string          // file path
	Precision int             // 4 (single) or 8 (double)
	Nlay      int             // number of layers
	Nrow      int             // number of rows
	Ncol      int             // number of columns
	Records   []*BudgetRecord // records in file order
}

// OpenCellBudget reads a binary cell-by-cell budget file, autodetecting
// precision. Both the classic form (full 3D block per record) and the
// compact form (IMETH 1 to 5) are understood.
func OpenCellBudget(path string) (o *CellBudget, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot open budget file: %v", err)
	}
	for _, prec := range []int{4, 8} {
		o, err = readBudget(path, b, prec)
		if err == nil {
			return o, nil
		}
	}
	return nil, chk.Err("cannot read budget file %q with single or double precision:\n%v", path, err)
}

func readBudget(path string, b []byte, prec int) (o *CellBudget, err error) {
	o = &CellBudget{Path: path, Precision: prec}
	r := bytes.NewReader(b)
	for {
		rec, err := o.readRecord(r, prec)
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(o.Records) > 0 && err == io.ErrUnexpectedEOF {
				break // truncated trailing record
			}
			return nil, err
		}
		o.Records = append(o.Records, rec)
	}
	if len(o.Records) == 0 {
		return nil, chk.Err("budget file %q has no records", path)
	}
	return
}

func (o *CellBudget) readRecord(r *bytes.Reader, prec int) (rec *BudgetRecord, err error) {

	// common header: KSTP KPER TEXT NCOL NROW NLAY
	var kstp, kper int32
	if err = binary.Read(r, binary.LittleEndian, &kstp); err != nil {
		return nil, err
	}
	if err = binary.Read(r, binary.LittleEndian, &kper); err != nil {
		return nil, eof2unexp(err)
	}
	text, err := readText(r)
	if err != nil {
		return nil, err
	}
	var ncol, nrow, nlay int32
	if err = binary.Read(r, binary.LittleEndian, &ncol); err != nil {
		return nil, eof2unexp(err)
	}
	if err = binary.Read(r, binary.LittleEndian, &nrow); err != nil {
		return nil, eof2unexp(err)
	}
	if err = binary.Read(r, binary.LittleEndian, &nlay); err != nil {
		return nil, eof2unexp(err)
	}
	if !plausibleDims(ncol, nrow) || nlay == 0 {
		return nil, chk.Err("implausible budget record header: ncol=%d nrow=%d nlay=%d", ncol, nrow, nlay)
	}
	rec = &BudgetRecord{Kstp: int(kstp), Kper: int(kper), Text: text, Totim: -1}

	// classic form: full 3D block
	if nlay > 0 {
		o.setDims(int(nlay), int(nrow), int(ncol))
		rec.Data, err = o.read3d(r, prec)
		return rec, err
	}

	// compact form
	o.setDims(int(-nlay), int(nrow), int(ncol))
	var imeth int32
	if err = binary.Read(r, binary.LittleEndian, &imeth); err != nil {
		return nil, eof2unexp(err)
	}
	rec.Imeth = int(imeth)
	if rec.Delt, err = readReal(r, prec); err != nil {
		return nil, eof2unexp(err)
	}
	if _, err = readReal(r, prec); err != nil { // pertim
		return nil, eof2unexp(err)
	}
	if rec.Totim, err = readReal(r, prec); err != nil {
		return nil, eof2unexp(err)
	}

	switch rec.Imeth {

	case imethFull3d:
		rec.Data, err = o.read3d(r, prec)

	case imethList:
		rec.Data, err = o.readList(r, prec, 1)

	case imethLayerInd:
		var lay [][]int
		lay, err = o.readIntArray2d(r)
		if err != nil {
			return nil, err
		}
		var a [][]float64
		a, err = readArray(r, prec, o.Nrow, o.Ncol)
		if err != nil {
			return nil, err
		}
		rec.Data = utl.Deep3alloc(o.Nlay, o.Nrow, o.Ncol)
		for i := 0; i < o.Nrow; i++ {
			for j := 0; j < o.Ncol; j++ {
				k := lay[i][j] - 1
				if k < 0 || k >= o.Nlay {
					return nil, chk.Err("layer indicator %d out of range at row %d col %d", lay[i][j], i, j)
				}
				rec.Data[k][i][j] = a[i][j]
			}
		}

	case imethTopLayer:
		var a [][]float64
		a, err = readArray(r, prec, o.Nrow, o.Ncol)
		if err != nil {
			return nil, err
		}
		rec.Data = utl.Deep3alloc(o.Nlay, o.Nrow, o.Ncol)
		rec.Data[0] = a

	case imethListAux:
		var nval int32
		if err = binary.Read(r, binary.LittleEndian, &nval); err != nil {
			return nil, eof2unexp(err)
		}
		if nval < 1 || nval > 100 {
			return nil, chk.Err("implausible NVAL=%d in budget record %q", nval, text)
		}
		for a := 0; a < int(nval)-1; a++ {
			if _, err = readText(r); err != nil { // aux variable name
				return nil, err
			}
		}
		rec.Data, err = o.readList(r, prec, int(nval))

	default:
		return nil, chk.Err("budget file %q: unknown compact storage method IMETH=%d", o.Path, rec.Imeth)
	}
	return rec, err
}

func (o *CellBudget) setDims(nlay, nrow, ncol int) {
	if o.Nlay == 0 {
		o.Nlay, o.Nrow, o.Ncol = nlay, nrow, ncol
	}
}

func (o *CellBudget) read3d(r *bytes.Reader, prec int) (a [][][]float64, err error) {
	a = make([][][]float64, o.Nlay)
	for k := 0; k < o.Nlay; k++ {
		a[k], err = readArray(r, prec, o.Nrow, o.Ncol)
		if err != nil {
			return nil, err
		}
	}
	return
}

// readList reads an (icell, q, aux...) list and scatters it into the grid
// shape, accumulating terms that land in the same cell
func (o *CellBudget) readList(r *bytes.Reader, prec, nval int) (a [][][]float64, err error) {
	var nlist int32
	if err = binary.Read(r, binary.LittleEndian, &nlist); err != nil {
		return nil, eof2unexp(err)
	}
	if nlist < 0 || int(nlist) > o.Nlay*o.Nrow*o.Ncol {
		return nil, chk.Err("implausible NLIST=%d in budget file %q", nlist, o.Path)
	}
	a = utl.Deep3alloc(o.Nlay, o.Nrow, o.Ncol)
	ncells := o.Nrow * o.Ncol
	for n := 0; n < int(nlist); n++ {
		var icell int32
		if err = binary.Read(r, binary.LittleEndian, &icell); err != nil {
			return nil, eof2unexp(err)
		}
		q, err := readReal(r, prec)
		if err != nil {
			return nil, eof2unexp(err)
		}
		for v := 1; v < nval; v++ { // discard auxiliary values
			if _, err = readReal(r, prec); err != nil {
				return nil, eof2unexp(err)
			}
		}
		ic := int(icell) - 1
		if ic < 0 || ic >= o.Nlay*ncells {
			return nil, chk.Err("cell index %d out of range in budget file %q", icell, o.Path)
		}
		k := ic / ncells
		i := (ic % ncells) / o.Ncol
		j := ic % o.Ncol
		a[k][i][j] += q
	}
	return
}

func (o *CellBudget) readIntArray2d(r *bytes.Reader) (a [][]int, err error) {
	a = make([][]int, o.Nrow)
	for i := 0; i < o.Nrow; i++ {
		a[i] = make([]int, o.Ncol)
		for j := 0; j < o.Ncol; j++ {
			var v int32
			if err = binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, eof2unexp(err)
			}
			a[i][j] = int(v)
		}
	}
	return
}

// TextNames returns the unique flow-term labels, in file order
func (o *CellBudget) TextNames() (names []string) {
	seen := make(map[string]bool)
	for _, rec := range o.Records {
		if !seen[rec.Text] {
			seen[rec.Text] = true
			names = append(names, rec.Text)
		}
	}
	return
}

// Get returns the [nlay][nrow][ncol] array of one flow term at one
// (kstp,kper)
func (o *CellBudget) Get(text string, kstp, kper int) (a [][][]float64, err error) {
	for _, rec := range o.Records {
		if rec.Text == text && rec.Kstp == kstp && rec.Kper == kper {
			return rec.Data, nil
		}
	}
	return nil, chk.Err("budget file %q has no %q record at kstp=%d kper=%d", o.Path, text, kstp, kper)
}

// FaceFlows returns the three face-flow arrays at one (kstp,kper). A
// direction the simulation could not write (1-column, 1-row or 1-layer
// models) comes back as a zero array; when no face-flow record exists at
// the requested time at all, an error is returned instead of three zero
// fields.
func (o *CellBudget) FaceFlows(kstp, kper int) (frf, fff, flf [][][]float64, err error) {
	nfound := 0
	get := func(text string) [][][]float64 {
		a, err := o.Get(text, kstp, kper)
		if err != nil {
			return utl.Deep3alloc(o.Nlay, o.Nrow, o.Ncol)
		}
		nfound++
		return a
	}
	frf = get("FLOW RIGHT FACE")
	fff = get("FLOW FRONT FACE")
	flf = get("FLOW LOWER FACE")
	if nfound == 0 {
		return nil, nil, nil, chk.Err("budget file %q has no face-flow records at kstp=%d kper=%d", o.Path, kstp, kper)
	}
	return frf, fff, flf, nil
}
