// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main provides the entry point for the gwplot CLI.
//
// gwplot loads a pre-built groundwater model, runs the external simulator
// and renders map or cross-section figures from the simulated output.
//
// Usage:
//
//	gwplot run  -w workspace -n model.nam
//	gwplot map  -w workspace -n model.nam --heads --contours
//	gwplot xsec -w workspace -n model.nam --row 4 --heads
//
// See --help for all available options.
package main

// main is the entry point for gwplot.
func main() {
	Execute()
}
