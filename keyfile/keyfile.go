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

// Package keyfile reads integer keys from text files and argument lists.
//
// Keys are separated by whitespace or commas. A '#' starts a comment that
// runs to the end of the line.
//
//	# first batch
//	10 20 30
//	5, 15, 25   # trailing comment
package keyfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var (
	ErrBadKey   = errors.New("not an integer key")
	ErrNotFound = errors.New("key file not found")
)

// Parse reads every key from r in file order. Duplicates are kept; the tree
// ignores them on insert.
func Parse(r io.Reader) ([]int, error) {
	var keys []int

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		for _, tok := range fields(line) {
			key, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(ErrBadKey, "line %d: %q", lineNo, tok)
			}
			keys = append(keys, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading keys")
	}

	return keys, nil
}

// ParseArgs converts command-line arguments into keys. Each argument may
// itself be a comma separated list, so "1,2" "3" yields [1 2 3].
func ParseArgs(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		for _, tok := range fields(arg) {
			key, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(ErrBadKey, "argument %q", tok)
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
}

// Reader loads key files through an afero filesystem so tests can swap in
// an in-memory one.
type Reader struct {
	fs afero.Fs
}

// NewReader returns a Reader over fs, or the OS filesystem when fs is nil.
func NewReader(fs afero.Fs) *Reader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Reader{fs: fs}
}

// ReadFile parses the keys stored at path.
func (r *Reader) ReadFile(path string) ([]int, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s does not exist. Write one key per line (or comma separated) and try again", path)
		}
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	keys, err := Parse(file)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return keys, nil
}
