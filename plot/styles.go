// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"gopkg.in/yaml.v3"
)

// Style is the YAML-loadable rendition of plotting arguments, so that a
// style file can restyle the CLI plots without recompiling
type Style struct {
	C      string    `yaml:"c"`      // line color
	M      string    `yaml:"m"`      // marker
	Ls     string    `yaml:"ls"`     // line style
	Lw     float64   `yaml:"lw"`     // line width
	Ms     int       `yaml:"ms"`     // marker size
	Fc     string    `yaml:"fc"`     // face color
	Ec     string    `yaml:"ec"`     // edge color
	Levels []float64 `yaml:"levels"` // contour levels
	Cmap   []string  `yaml:"cmap"`   // color ramp for arrays
}

// Args converts a style to plt arguments
func (o Style) Args() *plt.A {
	return &plt.A{
		C:      o.C,
		M:      o.M,
		Ls:     o.Ls,
		Lw:     o.Lw,
		Ms:     o.Ms,
		Fc:     o.Fc,
		Ec:     o.Ec,
		Levels: o.Levels,
	}
}

// Styles maps plot element names ("grid", "contours", "discharge", ...) to
// styles
type Styles map[string]Style

// LoadStyles reads a YAML style file
func LoadStyles(path string) (o Styles, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot open style file: %v", err)
	}
	if err = yaml.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("cannot parse style file %q: %v", path, err)
	}
	return
}

// Get returns the named style, or the zero style so that the plot methods
// fall back to their defaults
func (o Styles) Get(name string) (Style, bool) {
	if o == nil {
		return Style{}, false
	}
	s, ok := o[name]
	return s, ok
}

// ArgsFor returns plt arguments for a named style, nil when absent
func (o Styles) ArgsFor(name string) *plt.A {
	if s, ok := o.Get(name); ok {
		return s.Args()
	}
	return nil
}
