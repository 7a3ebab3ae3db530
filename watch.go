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
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/cybrota/avlkit/keyfile"
	"github.com/cybrota/avlkit/keyset"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// keyWatcher re-reads a key file whenever it changes. Inserts are
// idempotent, so re-inserting the whole file only adds the new keys.
type keyWatcher struct {
	reader *keyfile.Reader
	path   string
	set    *keyset.Set
	config *Config
	out    io.Writer

	// called after every reload, for tests
	onReload func(added int)
}

// reload reads the file and prints the tree when new keys arrived.
func (kw *keyWatcher) reload() (int, error) {
	keys, err := kw.reader.ReadFile(kw.path)
	if err != nil {
		return 0, err
	}

	added := kw.set.Add(keys...)
	if added > 0 {
		fmt.Fprintf(kw.out, "%s+%d keys%s from %s\n", Green, added, Reset, kw.path)
		fmt.Fprintln(kw.out, renderTree(kw.set.Tree(), kw.config.Display))
		fmt.Fprintln(kw.out, treeSummary(kw.set.Tree()))
	}
	if kw.onReload != nil {
		kw.onReload(added)
	}
	return added, nil
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// watch blocks until ctx is done, reloading on every change to the file.
// The parent directory is watched so editors that replace the file by
// rename are still seen.
func (kw *keyWatcher) watch(ctx context.Context) error {
	filePath, err := filepath.Abs(filepath.Clean(kw.path))
	if err != nil {
		return errors.Wrapf(err, "resolving %s", kw.path)
	}

	if _, err := kw.reload(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		return errors.Wrapf(err, "watching %s", filepath.Dir(filePath))
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filePath || !watcherEventFileChange(event) {
				continue
			}
			if _, err := kw.reload(); err != nil {
				// a half-written line is common, wait for the next write
				log.Printf("reload %s: %v", kw.path, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
