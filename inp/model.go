// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of model input files: the name file and
// the minimum set of packages the plotting operations consume (DIS, BAS6 and
// RCH). Other packages listed in the name file are recorded and skipped.
package inp

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/echristi/gwplot/grid"
)

// PackageRecord is one entry of the name file
type PackageRecord struct {
	Ftype string // file type; e.g. "DIS", "BAS6", "LPF"
	Unit  int    // fortran unit number
	Fname string // file name relative to the workspace
}

// Model holds a loaded model: grid, boundary arrays and the package list
type Model struct {

	// identification
	Name      string // base name (name file without extension)
	Workspace string // directory holding the input files

	// discretization
	Dis  *Dis       // DIS package
	Grid *grid.Grid // [from Dis] spatial discretization

	// basic package
	Bas    *Bas          // BAS6 package
	Ibound [][][]int     // [from Bas] boundary array
	Strt   [][][]float64 // [from Bas] starting heads

	// optional packages
	Rch *Rch // RCH package; nil unless listed

	// name file bookkeeping
	Packages []PackageRecord // all entries, in file order
	Skipped  []string        // ftypes listed but not parsed
}

// LoadModel reads the name file in workspace and then the packages the
// toolkit understands. Unknown package types are reported and skipped, not
// treated as errors.
func LoadModel(workspace, namefile string) (o *Model, err error) {
	o = &Model{
		Name:      strings.TrimSuffix(namefile, filepath.Ext(namefile)),
		Workspace: workspace,
	}
	err = o.readNam(filepath.Join(workspace, namefile))
	if err != nil {
		return nil, err
	}

	// DIS
	rec := o.findPackage("DIS")
	if rec == nil {
		return nil, chk.Err("name file %q has no DIS package", namefile)
	}
	o.Dis, err = ReadDis(filepath.Join(workspace, rec.Fname))
	if err != nil {
		return nil, chk.Err("cannot read DIS package:\n%v", err)
	}
	o.Grid = o.Dis.Grid
	g := o.Grid

	// BAS6
	rec = o.findPackage("BAS6")
	if rec == nil {
		return nil, chk.Err("name file %q has no BAS6 package", namefile)
	}
	o.Bas, err = ReadBas(filepath.Join(workspace, rec.Fname), g.Nlay, g.Nrow, g.Ncol)
	if err != nil {
		return nil, chk.Err("cannot read BAS6 package:\n%v", err)
	}
	o.Ibound = o.Bas.Ibound
	o.Strt = o.Bas.Strt

	// RCH
	if rec = o.findPackage("RCH"); rec != nil {
		o.Rch, err = ReadRch(filepath.Join(workspace, rec.Fname), o.Dis.Nper, g.Nrow, g.Ncol)
		if err != nil {
			return nil, chk.Err("cannot read RCH package:\n%v", err)
		}
	}

	// report skipped packages
	for _, p := range o.Packages {
		switch p.Ftype {
		case "DIS", "BAS6", "RCH", "LIST", "DATA", "DATA(BINARY)":
			continue
		}
		o.Skipped = append(o.Skipped, p.Ftype)
	}
	if len(o.Skipped) > 0 && io.Verbose {
		io.Pf("note: skipping packages: %v\n", o.Skipped)
	}
	return
}

// readNam parses the name file: FTYPE NUNIT FNAME records, '#' comments
func (o *Model) readNam(path string) (err error) {
	r, err := newRdr(path)
	if err != nil {
		return err
	}
	for {
		toks, err := r.nextTokens()
		if err != nil {
			break // end of file
		}
		if len(toks) < 3 {
			return chk.Err("%s: name file record needs FTYPE NUNIT FNAME; got %q", path, strings.Join(toks, " "))
		}
		unit, err := strconv.Atoi(toks[1])
		if err != nil {
			return chk.Err("%s: bad unit number %q", path, toks[1])
		}
		o.Packages = append(o.Packages, PackageRecord{
			Ftype: strings.ToUpper(toks[0]),
			Unit:  unit,
			Fname: toks[2],
		})
	}
	if len(o.Packages) == 0 {
		return chk.Err("%s: name file is empty", path)
	}
	return nil
}

// findPackage returns the first name file entry of the given type
func (o *Model) findPackage(ftype string) *PackageRecord {
	for i, p := range o.Packages {
		if p.Ftype == ftype {
			return &o.Packages[i]
		}
	}
	return nil
}

// FileForUnit returns the file name attached to a fortran unit number
func (o *Model) FileForUnit(unit int) (fname string, found bool) {
	for _, p := range o.Packages {
		if p.Unit == unit {
			return p.Fname, true
		}
	}
	return "", false
}

// OutputFile resolves a binary output file by extension from the
// DATA(BINARY) units of the name file, falling back to the conventional
// name when the name file does not declare one
func (o *Model) OutputFile(ext string) string {
	for _, p := range o.Packages {
		if p.Ftype != "DATA(BINARY)" {
			continue
		}
		fname, found := o.FileForUnit(p.Unit)
		if found && strings.HasSuffix(strings.ToLower(fname), ext) {
			return fname
		}
	}
	return o.Name + ext
}
