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
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cybrota/avlkit/keyfile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyWatcherReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/keys.txt", []byte("10 20"), 0644))

	config := defaultConfig
	config.Display.Color = false
	var out bytes.Buffer
	kw := &keyWatcher{
		reader: keyfile.NewReader(fs),
		path:   "/keys.txt",
		set:    newKeySet(&config),
		config: &config,
		out:    &out,
	}

	added, err := kw.reload()
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	require.NoError(t, afero.WriteFile(fs, "/keys.txt", []byte("10 20\n30\n"), 0644))
	added, err = kw.reload()
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Contains(t, out.String(), "- Root: 20 (BF: 0)")
	assert.Contains(t, out.String(), "3 keys, height 2")

	// nothing new, nothing printed
	out.Reset()
	added, err = kw.reload()
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Empty(t, out.String())
}

func TestKeyWatcherPicksUpAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("5\n"), 0644))

	config := defaultConfig
	config.Display.Color = false
	reloads := make(chan int, 16)
	kw := &keyWatcher{
		reader:   keyfile.NewReader(nil),
		path:     path,
		set:      newKeySet(&config),
		config:   &config,
		out:      &bytes.Buffer{},
		onReload: func(added int) {
			select {
			case reloads <- added:
			default:
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- kw.watch(ctx) }()

	// initial load
	select {
	case added := <-reloads:
		require.Equal(t, 1, added)
	case <-time.After(5 * time.Second):
		t.Fatal("initial reload never happened")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("7 9\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	deadline := time.After(5 * time.Second)
	total := 0
	for total < 2 {
		select {
		case added := <-reloads:
			total += added
		case <-deadline:
			t.Fatalf("saw %d new keys, want 2", total)
		}
	}

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []int{5, 7, 9}, kw.set.Tree().InOrder())
}
