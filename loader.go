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
	"fmt"
	"io"

	"github.com/cybrota/avlkit/keyfile"
	"github.com/cybrota/avlkit/keyset"
	"github.com/schollz/progressbar/v3"
)

// collectKeys gathers keys from command-line arguments followed by the
// contents of file, if one is given.
func collectKeys(reader *keyfile.Reader, args []string, file string) ([]int, error) {
	keys, err := keyfile.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return keys, nil
	}
	fromFile, err := reader.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return append(keys, fromFile...), nil
}

func newKeySet(config *Config) *keyset.Set {
	return keyset.New(keyset.WithFilterSize(config.Filter.Size, config.Filter.Hashes))
}

// insertKeys adds keys to set in order. Large batches get a progress bar
// on out.
func insertKeys(set *keyset.Set, keys []int, config *Config, out io.Writer) (added int, err error) {
	threshold := config.Load.ProgressThreshold
	if threshold <= 0 || len(keys) < threshold {
		return set.Add(keys...), nil
	}

	bar := progressbar.NewOptions(len(keys),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("🌳 Inserting keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(0),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(out, "\n✅ Inserted %d keys\n", len(keys))
		}),
	)

	for _, key := range keys {
		added += set.Add(key)
		if err := bar.Add(1); err != nil {
			return added, err
		}
	}
	return added, nil
}

// loadKeySet is the common path for the one-shot commands.
func loadKeySet(reader *keyfile.Reader, args []string, file string, config *Config, out io.Writer) (*keyset.Set, error) {
	keys, err := collectKeys(reader, args, file)
	if err != nil {
		return nil, err
	}
	set := newKeySet(config)
	if _, err := insertKeys(set, keys, config, out); err != nil {
		return nil, err
	}
	return set, nil
}
