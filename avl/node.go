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

package avl

import "cmp"

// Node is a tree vertex. Fields are only changed by the owning tree.
type Node[K cmp.Ordered] struct {
	key    K
	height int // leaf = 1
	left   *Node[K]
	right  *Node[K]
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node, or the zero K for a nil node.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the stored height of the node, 0 for a nil node.
func (n *Node[K]) Height() int {
	return Height(n)
}

// Height returns the stored height of n; an absent node has height 0.
func Height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor returns Height(left) - Height(right), or 0 for a nil node.
func BalanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return Height(n.left) - Height(n.right)
}

func updateHeight[K cmp.Ordered](n *Node[K]) {
	n.height = max(Height(n.left), Height(n.right)) + 1
}
