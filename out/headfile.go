// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the reading of binary simulation output: the head
// file (.hds) written by the output-control package and the cell-by-cell
// budget file (.cbc). Both come as unformatted streams whose precision
// (single or double) is detected from the first record.
package out

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// HeadRecord holds one layer of simulated heads at one output time
type HeadRecord struct {
	Kstp   int         // time step within the stress period (one-based)
	Kper   int         // stress period (one-based)
	Pertim float64     // time within the stress period
	Totim  float64     // total simulation time
	Text   string      // record label; e.g. "HEAD"
	Ilay   int         // layer (one-based)
	Data   [][]float64 // [nrow][ncol] values
}

// HeadFile holds all records of a binary head file
type HeadFile struct {
	Path      string        // file path
	Precision int           // 4 (single) or 8 (double)
	Nrow      int           // number of rows
	Ncol      int           // number of columns
	Records   []*HeadRecord // records in file order
}

// OpenHeadFile reads a binary head file, autodetecting precision
func OpenHeadFile(path string) (o *HeadFile, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot open head file: %v", err)
	}
	for _, prec := range []int{4, 8} {
		o, err = readHeads(path, b, prec)
		if err == nil {
			return o, nil
		}
	}
	return nil, chk.Err("cannot read head file %q with single or double precision:\n%v", path, err)
}

func readHeads(path string, b []byte, prec int) (o *HeadFile, err error) {
	o = &HeadFile{Path: path, Precision: prec}
	r := bytes.NewReader(b)
	for {
		rec, err := readHeadRecord(r, prec)
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(o.Records) > 0 && err == io.ErrUnexpectedEOF {
				break // simulator died mid-write; keep what was read
			}
			return nil, err
		}
		if o.Nrow == 0 {
			o.Nrow = len(rec.Data)
			o.Ncol = len(rec.Data[0])
		}
		o.Records = append(o.Records, rec)
	}
	if len(o.Records) == 0 {
		return nil, chk.Err("head file %q has no records", path)
	}
	return
}

func readHeadRecord(r *bytes.Reader, prec int) (rec *HeadRecord, err error) {
	var kstp, kper int32
	if err = binary.Read(r, binary.LittleEndian, &kstp); err != nil {
		return nil, err // io.EOF here is a clean end of file
	}
	if err = binary.Read(r, binary.LittleEndian, &kper); err != nil {
		return nil, eof2unexp(err)
	}
	pertim, err := readReal(r, prec)
	if err != nil {
		return nil, eof2unexp(err)
	}
	totim, err := readReal(r, prec)
	if err != nil {
		return nil, eof2unexp(err)
	}
	text, err := readText(r)
	if err != nil {
		return nil, err
	}
	var ncol, nrow, ilay int32
	if err = binary.Read(r, binary.LittleEndian, &ncol); err != nil {
		return nil, eof2unexp(err)
	}
	if err = binary.Read(r, binary.LittleEndian, &nrow); err != nil {
		return nil, eof2unexp(err)
	}
	if err = binary.Read(r, binary.LittleEndian, &ilay); err != nil {
		return nil, eof2unexp(err)
	}
	if !plausibleDims(ncol, nrow) || ilay < 1 {
		return nil, chk.Err("implausible head record header: ncol=%d nrow=%d ilay=%d", ncol, nrow, ilay)
	}
	data, err := readArray(r, prec, int(nrow), int(ncol))
	if err != nil {
		return nil, err
	}
	rec = &HeadRecord{
		Kstp:   int(kstp),
		Kper:   int(kper),
		Pertim: pertim,
		Totim:  totim,
		Text:   text,
		Ilay:   int(ilay),
		Data:   data,
	}
	return
}

// Times returns the unique total times, in file order
func (o *HeadFile) Times() (times []float64) {
	for _, rec := range o.Records {
		if n := len(times); n == 0 || times[n-1] != rec.Totim {
			times = append(times, rec.Totim)
		}
	}
	return
}

// KstpKper returns the unique (kstp,kper) pairs, in file order
func (o *HeadFile) KstpKper() (pairs [][2]int) {
	for _, rec := range o.Records {
		p := [2]int{rec.Kstp, rec.Kper}
		if n := len(pairs); n == 0 || pairs[n-1] != p {
			pairs = append(pairs, p)
		}
	}
	return
}

// Head assembles the [nlay][nrow][ncol] head array at one (kstp,kper)
func (o *HeadFile) Head(kstp, kper int) (h [][][]float64, err error) {
	var layers []*HeadRecord
	nlay := 0
	for _, rec := range o.Records {
		if rec.Kstp == kstp && rec.Kper == kper {
			layers = append(layers, rec)
			if rec.Ilay > nlay {
				nlay = rec.Ilay
			}
		}
	}
	if len(layers) == 0 {
		return nil, chk.Err("head file %q has no records at kstp=%d kper=%d", o.Path, kstp, kper)
	}
	h = make([][][]float64, nlay)
	for _, rec := range layers {
		h[rec.Ilay-1] = rec.Data
	}
	return
}

// HeadAt assembles the head array at the output time closest to totim
func (o *HeadFile) HeadAt(totim float64) (h [][][]float64, err error) {
	best := o.Records[0]
	for _, rec := range o.Records {
		if absf(rec.Totim-totim) < absf(best.Totim-totim) {
			best = rec
		}
	}
	return o.Head(best.Kstp, best.Kper)
}

// auxiliary binary readers shared with the budget reader

func readReal(r *bytes.Reader, prec int) (float64, error) {
	if prec == 4 {
		var v float32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return float64(v), nil
	}
	var v float64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// readText reads a 16-character label and validates it as printable ASCII,
// which is what distinguishes the two precisions
func readText(r *bytes.Reader) (string, error) {
	var raw [16]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return "", eof2unexp(err)
	}
	for _, c := range raw {
		if c < 0x20 || c > 0x7e {
			return "", chk.Err("record label is not ASCII text: % x", raw)
		}
	}
	return strings.TrimSpace(string(raw[:])), nil
}

func readArray(r *bytes.Reader, prec, nrow, ncol int) (a [][]float64, err error) {
	a = utl.Alloc(nrow, ncol)
	for i := 0; i < nrow; i++ {
		for j := 0; j < ncol; j++ {
			a[i][j], err = readReal(r, prec)
			if err != nil {
				return nil, eof2unexp(err)
			}
		}
	}
	return
}

func plausibleDims(ncol, nrow int32) bool {
	const maxdim = 100000000
	return ncol > 0 && nrow > 0 && ncol < maxdim && nrow < maxdim
}

// eof2unexp turns a mid-record EOF into io.ErrUnexpectedEOF so that a clean
// end of file is only ever reported at a record boundary
func eof2unexp(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
