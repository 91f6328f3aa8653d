// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// binWriter assembles unformatted-stream test files
type binWriter struct {
	buf  bytes.Buffer
	prec int
}

func (o *binWriter) i32(v ...int32) {
	for _, x := range v {
		binary.Write(&o.buf, binary.LittleEndian, x)
	}
}

func (o *binWriter) real(v ...float64) {
	for _, x := range v {
		if o.prec == 4 {
			binary.Write(&o.buf, binary.LittleEndian, float32(x))
		} else {
			binary.Write(&o.buf, binary.LittleEndian, x)
		}
	}
}

func (o *binWriter) text(s string) {
	o.buf.WriteString(io.Sf("%-16s", s))
}

func (o *binWriter) dump(tst *testing.T, fname string) string {
	path := filepath.Join(tst.TempDir(), fname)
	if err := os.WriteFile(path, o.buf.Bytes(), 0644); err != nil {
		tst.Fatalf("cannot write test file: %v", err)
	}
	return path
}

// headRecord appends one head record for a 2x3 grid where the value of cell
// (i,j) is base + i*10 + j
func (o *binWriter) headRecord(kstp, kper, ilay int32, totim, base float64) {
	o.i32(kstp, kper)
	o.real(totim/2, totim) // pertim, totim
	o.text("HEAD")
	o.i32(3, 2, ilay) // ncol, nrow, ilay
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			o.real(base + float64(i*10+j))
		}
	}
}

func Test_hds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hds01. head file, single and double precision")

	for _, prec := range []int{4, 8} {
		w := &binWriter{prec: prec}
		w.headRecord(1, 1, 1, 10, 100)
		w.headRecord(1, 1, 2, 10, 200)
		w.headRecord(5, 2, 1, 110, 300)
		w.headRecord(5, 2, 2, 110, 400)
		path := w.dump(tst, "demo.hds")

		h, err := OpenHeadFile(path)
		if err != nil {
			tst.Errorf("prec=%d: open failed:\n%v", prec, err)
			return
		}
		io.Pforan("prec=%d records=%d times=%v\n", prec, len(h.Records), h.Times())

		chk.IntAssert(h.Precision, prec)
		chk.IntAssert(len(h.Records), 4)
		chk.IntAssert(h.Nrow, 2)
		chk.IntAssert(h.Ncol, 3)
		chk.Array(tst, "times", 1e-6, h.Times(), []float64{10, 110})

		heads, err := h.Head(5, 2)
		if err != nil {
			tst.Errorf("prec=%d: Head failed:\n%v", prec, err)
			return
		}
		chk.IntAssert(len(heads), 2)
		chk.Float64(tst, "layer 1 cell (1,2)", 1e-6, heads[0][1][2], 312)
		chk.Float64(tst, "layer 2 cell (0,0)", 1e-6, heads[1][0][0], 400)

		heads, err = h.HeadAt(12.0)
		if err != nil {
			tst.Errorf("prec=%d: HeadAt failed:\n%v", prec, err)
			return
		}
		chk.Float64(tst, "head at t=12 is from t=10", 1e-6, heads[0][0][0], 100)
	}
}

func Test_hds02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hds02. truncated head file keeps complete records")

	w := &binWriter{prec: 4}
	w.headRecord(1, 1, 1, 10, 100)
	w.headRecord(1, 1, 2, 10, 200)
	full := w.buf.Bytes()
	path := filepath.Join(tst.TempDir(), "cut.hds")
	if err := os.WriteFile(path, full[:len(full)-10], 0644); err != nil {
		tst.Fatalf("cannot write test file: %v", err)
	}

	h, err := OpenHeadFile(path)
	if err != nil {
		tst.Errorf("open failed:\n%v", err)
		return
	}
	chk.IntAssert(len(h.Records), 1)
	chk.Float64(tst, "surviving record", 1e-6, h.Records[0].Data[0][0], 100)
}

func Test_cbc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cbc01. budget file, classic form")

	w := &binWriter{prec: 4}
	w.i32(1, 1)
	w.text("FLOW RIGHT FACE")
	w.i32(3, 2, 2) // ncol, nrow, nlay (positive: classic)
	for n := 0; n < 2*2*3; n++ {
		w.real(float64(n))
	}
	path := w.dump(tst, "classic.cbc")

	cbc, err := OpenCellBudget(path)
	if err != nil {
		tst.Errorf("open failed:\n%v", err)
		return
	}
	chk.IntAssert(cbc.Nlay, 2)
	chk.Strings(tst, "texts", cbc.TextNames(), []string{"FLOW RIGHT FACE"})

	frf, err := cbc.Get("FLOW RIGHT FACE", 1, 1)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "frf[1][0][2]", 1e-6, frf[1][0][2], 8)
}

func Test_cbc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cbc02. budget file, compact forms")

	w := &binWriter{prec: 8}

	// imeth=1: full 3D
	w.i32(1, 1)
	w.text("FLOW RIGHT FACE")
	w.i32(3, 2, -2)
	w.i32(1)                // imeth
	w.real(1.0, 10.0, 10.0) // delt, pertim, totim
	for n := 0; n < 2*2*3; n++ {
		w.real(float64(n) / 2)
	}

	// imeth=2: list of (icell, q); cells are one-based, layer-major
	w.i32(1, 1)
	w.text("WELLS")
	w.i32(3, 2, -2)
	w.i32(2)
	w.real(1.0, 10.0, 10.0)
	w.i32(2) // nlist
	w.i32(4) // layer 0, row 1, col 0
	w.real(-25.0)
	w.i32(12) // layer 1, row 1, col 2
	w.real(-5.0)

	// imeth=4: 2D array over the top layer
	w.i32(1, 1)
	w.text("ET")
	w.i32(3, 2, -2)
	w.i32(4)
	w.real(1.0, 10.0, 10.0)
	for n := 0; n < 2*3; n++ {
		w.real(-1.0)
	}
	path := w.dump(tst, "compact.cbc")

	cbc, err := OpenCellBudget(path)
	if err != nil {
		tst.Errorf("open failed:\n%v", err)
		return
	}
	io.Pforan("texts = %v\n", cbc.TextNames())
	chk.IntAssert(cbc.Precision, 8)
	chk.Strings(tst, "texts", cbc.TextNames(), []string{"FLOW RIGHT FACE", "WELLS", "ET"})

	wel, err := cbc.Get("WELLS", 1, 1)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "well in layer 0", 1e-15, wel[0][1][0], -25)
	chk.Float64(tst, "well in layer 1", 1e-15, wel[1][1][2], -5)

	et, err := cbc.Get("ET", 1, 1)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "et top layer", 1e-15, et[0][1][1], -1)
	chk.Float64(tst, "et bottom layer", 1e-15, et[1][1][1], 0)

	frf, fff, flf, err := cbc.FaceFlows(1, 1)
	if err != nil {
		tst.Errorf("FaceFlows failed:\n%v", err)
		return
	}
	chk.Float64(tst, "frf present", 1e-15, frf[0][0][1], 0.5)
	chk.Float64(tst, "fff absent => zero", 1e-15, fff[1][1][2], 0)
	chk.Float64(tst, "flf absent => zero", 1e-15, flf[0][0][0], 0)

	if _, _, _, err = cbc.FaceFlows(9, 9); err == nil {
		tst.Errorf("FaceFlows at a time with no records must fail")
	}
}

func Test_cbc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cbc03. layer-indicator and aux-list storage")

	w := &binWriter{prec: 4}

	// imeth=3: layer-indicator array plus 2D array
	w.i32(1, 1)
	w.text("RECHARGE")
	w.i32(3, 2, -2)
	w.i32(3)
	w.real(1.0, 10.0, 10.0)
	w.i32(1, 1, 2) // layer indicators, row 0
	w.i32(2, 1, 1) // layer indicators, row 1
	for n := 0; n < 2*3; n++ {
		w.real(float64(10 + n))
	}

	// imeth=5: list with one auxiliary variable
	w.i32(1, 1)
	w.text("RIVER LEAKAGE")
	w.i32(3, 2, -2)
	w.i32(5)
	w.real(1.0, 10.0, 10.0)
	w.i32(2) // nval: q plus one aux
	w.text("IFACE")
	w.i32(2) // nlist
	w.i32(5) // layer 0, row 1, col 1
	w.real(-2.0, 6.0)
	w.i32(12) // layer 1, row 1, col 2
	w.real(-3.0, 1.0)
	path := w.dump(tst, "scatter.cbc")

	cbc, err := OpenCellBudget(path)
	if err != nil {
		tst.Errorf("open failed:\n%v", err)
		return
	}
	chk.Strings(tst, "texts", cbc.TextNames(), []string{"RECHARGE", "RIVER LEAKAGE"})

	rch, err := cbc.Get("RECHARGE", 1, 1)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "recharge into layer 0", 1e-6, rch[0][0][0], 10)
	chk.Float64(tst, "recharge into layer 1", 1e-6, rch[1][0][2], 12)
	chk.Float64(tst, "indicator picks layer 1", 1e-6, rch[1][1][0], 13)
	chk.Float64(tst, "no value under layer 0", 1e-6, rch[0][1][0], 0)

	riv, err := cbc.Get("RIVER LEAKAGE", 1, 1)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "river cell in layer 0", 1e-6, riv[0][1][1], -2)
	chk.Float64(tst, "river cell in layer 1", 1e-6, riv[1][1][2], -3)
}

func Test_cbc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cbc04. unknown compact storage method")

	w := &binWriter{prec: 4}
	w.i32(1, 1)
	w.text("BAD TERM")
	w.i32(3, 2, -2)
	w.i32(7) // no such imeth
	w.real(1.0, 10.0, 10.0)
	path := w.dump(tst, "bad.cbc")

	b, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("cannot read test file: %v", err)
	}
	_, err = readBudget(path, b, 4)
	if err == nil {
		tst.Errorf("unknown IMETH must fail")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "IMETH=7") {
		tst.Errorf("error does not name the storage method: %v", err)
	}
}

func Test_cbc05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cbc05. truncated budget file keeps complete records")

	w := &binWriter{prec: 4}
	for _, text := range []string{"FLOW RIGHT FACE", "FLOW FRONT FACE"} {
		w.i32(1, 1)
		w.text(text)
		w.i32(3, 2, 2)
		for n := 0; n < 2*2*3; n++ {
			w.real(float64(n))
		}
	}
	full := w.buf.Bytes()
	path := filepath.Join(tst.TempDir(), "cut.cbc")
	if err := os.WriteFile(path, full[:len(full)-10], 0644); err != nil {
		tst.Fatalf("cannot write test file: %v", err)
	}

	cbc, err := OpenCellBudget(path)
	if err != nil {
		tst.Errorf("open failed:\n%v", err)
		return
	}
	chk.IntAssert(len(cbc.Records), 1)
	chk.Strings(tst, "surviving texts", cbc.TextNames(), []string{"FLOW RIGHT FACE"})
}
