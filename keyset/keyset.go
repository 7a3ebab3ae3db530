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

// Package keyset pairs an AVL tree with a bloom filter so that lookups of
// absent keys usually skip the tree walk.
//
// A Set is not safe for concurrent use.
package keyset

import (
	"encoding/binary"

	"github.com/cybrota/avlkit/avl"
	"github.com/willf/bloom"
)

const (
	DefaultFilterSize   = 8192
	DefaultFilterHashes = 4
)

type options struct {
	filterSize   uint
	filterHashes uint
}

type Option func(*options)

// WithFilterSize sets the bloom filter to m bits and k hash functions.
// Zero values keep the defaults.
func WithFilterSize(m, k uint) Option {
	return func(o *options) {
		if m > 0 {
			o.filterSize = m
		}
		if k > 0 {
			o.filterHashes = k
		}
	}
}

// Set is an ordered integer set backed by avl.Tree.
type Set struct {
	tree   *avl.Tree[int]
	filter *bloom.BloomFilter

	// lookups answered by the filter alone
	filtered int
}

func New(opts ...Option) *Set {
	o := options{filterSize: DefaultFilterSize, filterHashes: DefaultFilterHashes}
	for _, opt := range opts {
		opt(&o)
	}
	return &Set{
		tree:   avl.New[int](),
		filter: bloom.New(o.filterSize, o.filterHashes),
	}
}

// Add inserts keys and returns how many of them were new.
func (s *Set) Add(keys ...int) int {
	before := s.tree.Len()
	for _, key := range keys {
		s.tree.Insert(key)
		s.filter.Add(encode(key))
	}
	return s.tree.Len() - before
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key int) bool {
	if !s.filter.Test(encode(key)) {
		s.filtered++
		return false
	}
	return s.tree.Contains(key)
}

// Filtered returns how many Contains calls the bloom filter answered
// without touching the tree.
func (s *Set) Filtered() int {
	return s.filtered
}

// Tree exposes the underlying tree for printing and checks. Callers must
// not insert into it directly or the filter goes stale.
func (s *Set) Tree() *avl.Tree[int] {
	return s.tree
}

func (s *Set) Len() int {
	return s.tree.Len()
}

func encode(key int) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(key))
	return b[:]
}
