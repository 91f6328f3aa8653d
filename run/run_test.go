// Copyright 2016 The Gwplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops a fake simulator into dir
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestFindExe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake simulator scripts are POSIX shell")
	}

	dir := t.TempDir()
	writeScript(t, dir, "mf2005", "exit 0")
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	t.Run("found in PATH", func(t *testing.T) {
		path, err := FindExe("mf2005")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "mf2005"), path)
	})

	t.Run("absolute path", func(t *testing.T) {
		path, err := FindExe(filepath.Join(dir, "mf2005"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "mf2005"), path)
	})

	t.Run("missing executable", func(t *testing.T) {
		_, err := FindExe("no-such-simulator")
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake simulator scripts are POSIX shell")
	}

	dir := t.TempDir()

	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantErr     bool
	}{
		{
			name:        "normal termination",
			body:        `echo " Normal termination of simulation"`,
			wantSuccess: true,
		},
		{
			name:        "clean exit without banner",
			body:        `echo "done"`,
			wantSuccess: false,
		},
		{
			name:    "nonzero exit",
			body:    "exit 2",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exe := writeScript(t, dir, "sim_"+tt.name[:4], tt.body)
			success, buff, err := Run(context.Background(), exe, "demo.nam", dir, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, success, "buffer: %q", buff)
		})
	}
}

func TestRunUsesWorkspace(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake simulator scripts are POSIX shell")
	}

	ws := t.TempDir()
	exe := writeScript(t, t.TempDir(), "sim", `pwd; echo "Normal termination"`)
	success, buff, err := Run(context.Background(), exe, "demo.nam", ws, false)
	require.NoError(t, err)
	assert.True(t, success)
	assert.Contains(t, buff, filepath.Base(ws))
}

func TestCheckOutput(t *testing.T) {
	ws := t.TempDir()

	assert.False(t, CheckOutput(ws, "demo"), "no files yet")

	require.NoError(t, os.WriteFile(filepath.Join(ws, "demo.hds"), []byte{0}, 0644))
	assert.False(t, CheckOutput(ws, "demo"), "budget file still missing")

	require.NoError(t, os.WriteFile(filepath.Join(ws, "demo.cbc"), []byte{0}, 0644))
	assert.True(t, CheckOutput(ws, "demo"))
}
