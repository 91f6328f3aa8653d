// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package run locates and invokes the external simulator executable and
// checks for the output files it should leave behind
package run

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FindExe resolves the simulator executable name: absolute and relative
// paths are used as-is, otherwise PATH is searched; on windows ".exe" is
// appended when missing
func FindExe(name string) (path string, err error) {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name += ".exe"
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		if _, err = os.Stat(name); err != nil {
			return "", chk.Err("simulator executable %q does not exist: %v", name, err)
		}
		return name, nil
	}
	path, err = exec.LookPath(name)
	if err != nil {
		return "", chk.Err("simulator executable %q not found in PATH: %v", name, err)
	}
	return
}

// Run invokes the simulator on a name file, blocking until it exits. The
// working directory is the model workspace; the console output is captured
// and returned, and streamed to stdout when verbose. success means the
// process exited normally and printed its normal-termination banner.
func Run(ctx context.Context, exe, namefile, workspace string, verbose bool) (success bool, buff string, err error) {
	cmd := exec.CommandContext(ctx, exe, namefile)
	cmd.Dir = workspace
	var b bytes.Buffer
	if verbose {
		cmd.Stdout = teeStdout(&b)
	} else {
		cmd.Stdout = &b
	}
	cmd.Stderr = cmd.Stdout
	err = cmd.Run()
	buff = b.String()
	if err != nil {
		return false, buff, chk.Err("simulation failed: %v", err)
	}
	return normalTermination(buff), buff, nil
}

// normalTermination scans the console buffer for the termination banner
func normalTermination(buff string) bool {
	sc := bufio.NewScanner(strings.NewReader(buff))
	for sc.Scan() {
		if strings.Contains(strings.ToLower(sc.Text()), "normal termination") {
			return true
		}
	}
	return false
}

// CheckOutput reports whether the two output files of a run exist. This is
// the tutorial's success test: printed diagnostics, no retry, no recovery.
func CheckOutput(workspace, base string) (ok bool) {
	ok = true
	for _, ext := range []string{".hds", ".cbc"} {
		path := filepath.Join(workspace, base+ext)
		if _, err := os.Stat(path); err != nil {
			io.Pfred("output file %q is missing\n", path)
			ok = false
			continue
		}
		io.Pf("found output file %q\n", path)
	}
	return
}

// teeStdout duplicates the captured buffer onto the console
func teeStdout(b *bytes.Buffer) *teeWriter {
	return &teeWriter{b}
}

type teeWriter struct {
	b *bytes.Buffer
}

func (o *teeWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	return o.b.Write(p)
}
