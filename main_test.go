// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cybrota/avlkit/keyfile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMemFs points the commands at an in-memory filesystem for one test.
func withMemFs(t *testing.T) afero.Fs {
	t.Helper()
	saved := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = saved })
	return appFs
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInsertCommandScenarioA(t *testing.T) {
	withMemFs(t)

	out, err := runCommand(t, "insert", "10", "20", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Root: 20 (BF: 0)")
	assert.Contains(t, out, "Left child: 10 (BF: 0)")
	assert.Contains(t, out, "Right child: 30 (BF: 0)")
	assert.Contains(t, out, "3 keys, height 2, root 20, range [10, 30]")
}

func TestInsertCommandFromFileWithHeights(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/keys.txt", []byte("# scenario B\n30 20 10\n"), 0644))

	out, err := runCommand(t, "insert", "--heights", "--file", "/keys.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Root: 20 (BF: 0, H: 2)")
}

func TestInsertCommandBadKey(t *testing.T) {
	withMemFs(t)

	_, err := runCommand(t, "insert", "10", "ten")
	require.Error(t, err)
	assert.ErrorIs(t, err, keyfile.ErrBadKey)
}

func TestContainsCommand(t *testing.T) {
	withMemFs(t)

	out, err := runCommand(t, "contains", "15", "20", "--keys", "10,20,5")
	require.NoError(t, err)
	assert.Contains(t, out, "contains(15) = ")
	assert.Regexp(t, `contains\(15\) = \S*false`, out)
	assert.Regexp(t, `contains\(20\) = \S*true`, out)
}

func TestCheckCommand(t *testing.T) {
	withMemFs(t)

	out, err := runCommand(t, "check", "50", "20", "10", "30", "25", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "6 keys")
}

func TestCheckCommandMissingFile(t *testing.T) {
	withMemFs(t)

	_, err := runCommand(t, "check", "--file", "/nope.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, keyfile.ErrNotFound)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

// withHome points the config lookup at dir and puts contents there, if any.
func withHome(t *testing.T, fs afero.Fs, dir, contents string) {
	t.Helper()
	t.Setenv("HOME", dir)
	if contents != "" {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, configFileName), []byte(contents), 0644))
	}
}

func TestColorDisabledByConfig(t *testing.T) {
	t.Cleanup(InitializeColors)
	fs := withMemFs(t)
	withHome(t, fs, "/home/plain", "display:\n  color: false\n")

	out, err := runCommand(t, "contains", "15", "20", "--keys", "10,20,5")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "contains(15) = false\n")
	assert.Contains(t, out, "contains(20) = true\n")

	out, err = runCommand(t, "check", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "OK 3 keys, height 2, root 2, range [1, 3]\n", out)
}

func TestColorFollowsTerminalMode(t *testing.T) {
	t.Cleanup(InitializeColors)
	fs := withMemFs(t)
	withHome(t, fs, "/home/light", "")
	t.Setenv("COLORFGBG", "0;15")

	out, err := runCommand(t, "check", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "\033[32mOK\033[0m")
}

func TestReportContainsLooksUpOnce(t *testing.T) {
	set := newKeySet(&defaultConfig)
	set.Add(10, 20, 5)

	var out bytes.Buffer
	reportContains(&out, set, []int{15, 20})

	assert.Equal(t, "contains(15) = "+Error+"false"+Reset+"\ncontains(20) = "+Green+"true"+Reset+"\n", out.String())
	// one absent query can be rejected by the filter at most once
	assert.LessOrEqual(t, set.Filtered(), 1)
}
