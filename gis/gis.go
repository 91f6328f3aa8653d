// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gis implements shapefile overlays: geometry plus the attribute
// convention used to style features on a map
package gis

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
)

// Feature is one shapefile record: a geometry and its attribute values
type Feature struct {
	Geom  geom.Geom         // the geometry
	Attrs map[string]string // attribute values, keyed by column name
}

// Layer holds the features of one shapefile
type Layer struct {
	Path     string    // shapefile path
	Features []Feature // all records
}

// ReadLayer reads a shapefile and the given attribute columns. Pass no
// column names to read geometry only.
func ReadLayer(path string, attrNames ...string) (o *Layer, err error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, chk.Err("cannot open shapefile %q: %v", path, err)
	}
	defer d.Close()
	o = &Layer{Path: path}
	for {
		g, fields, more := d.DecodeRowFields(attrNames...)
		if !more {
			break
		}
		o.Features = append(o.Features, Feature{Geom: g, Attrs: fields})
	}
	if err = d.Error(); err != nil {
		return nil, chk.Err("cannot read shapefile %q: %v", path, err)
	}
	return
}

// Paths flattens a geometry into drawable vertex sequences. closed tells
// whether each path is a polygon ring.
func Paths(g geom.Geom) (paths [][][]float64, closed []bool) {
	add := func(pts []geom.Point, cl bool) {
		p := make([][]float64, len(pts))
		for i, pt := range pts {
			p[i] = []float64{pt.X, pt.Y}
		}
		paths = append(paths, p)
		closed = append(closed, cl)
	}
	switch t := g.(type) {
	case geom.Point:
		add([]geom.Point{t}, false)
	case geom.MultiPoint:
		for _, pt := range t {
			add([]geom.Point{pt}, false)
		}
	case geom.LineString:
		add(t, false)
	case geom.MultiLineString:
		for _, ls := range t {
			add(ls, false)
		}
	case geom.Polygon:
		for _, ring := range t {
			add(ring, true)
		}
	case geom.MultiPolygon:
		for _, pg := range t {
			for _, ring := range pg {
				add(ring, true)
			}
		}
	}
	return
}

// Style holds the drawing parameters of one feature
type Style struct {
	Color string  // line/edge color
	Lw    float64 // line width
	Fc    string  // face color; "none" leaves the feature unfilled
}

// DefaultStyle is used for features without styling attributes
var DefaultStyle = Style{Color: "#6b6b6b", Lw: 1, Fc: "none"}

// StyleFromAttrs builds a feature style from the fixed attribute
// convention: "color", "lw" (or "linewidth") and "fc" columns. Values
// missing or unparsable fall back to the given defaults.
func StyleFromAttrs(attrs map[string]string, def Style) (s Style) {
	s = def
	if c, ok := lookup(attrs, "color"); ok && c != "" {
		s.Color = c
	}
	if w, ok := lookup(attrs, "lw"); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(w), 64); err == nil && v > 0 {
			s.Lw = v
		}
	} else if w, ok = lookup(attrs, "linewidth"); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(w), 64); err == nil && v > 0 {
			s.Lw = v
		}
	}
	if c, ok := lookup(attrs, "fc"); ok && c != "" {
		s.Fc = c
	}
	return
}

// lookup finds an attribute ignoring case; DBF columns are usually
// uppercase
func lookup(attrs map[string]string, name string) (string, bool) {
	for k, v := range attrs {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
