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

// Tree is an AVL tree. The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{root: nil}
}

// Root returns the current root node, or nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Insert adds key to the tree and rebalances the insertion path.
// Inserting a key that is already present is a no-op.
func (tree *Tree[K]) Insert(key K) {
	tree.root = tree.insertRecursive(tree.root, key)
}

func (tree *Tree[K]) insertRecursive(node *Node[K], key K) *Node[K] {
	if node == nil {
		tree.count++
		return newNode(key)
	}

	if key < node.key {
		node.left = tree.insertRecursive(node.left, key)
	} else if key > node.key {
		node.right = tree.insertRecursive(node.right, key)
	} else {
		// duplicate, nothing below changed
		return node
	}

	updateHeight(node)

	// the inserted key tells which grandchild grew
	balanceFactor := BalanceFactor(node)
	if balanceFactor > 1 {
		if key < node.left.key {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	} else if balanceFactor < -1 {
		if key > node.right.key {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// rotateRight lifts y's left child into y's place and returns it.
func rotateRight[K cmp.Ordered](y *Node[K]) *Node[K] {
	if y == nil || y.left == nil {
		return y
	}

	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[K cmp.Ordered](x *Node[K]) *Node[K] {
	if x == nil || x.right == nil {
		return x
	}

	y := x.right
	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)

	return y
}

// Contains reports whether key is stored in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	return tree.find(key) != nil
}

func (tree *Tree[K]) find(key K) *Node[K] {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Depth returns the number of edges between the root and key, or -1 when
// key is not in the tree.
func (tree *Tree[K]) Depth(key K) int {
	depth := 0
	for node := tree.root; node != nil; depth++ {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return depth
		}
	}
	return -1
}

// Min returns the smallest key. ok is false for an empty tree.
func (tree *Tree[K]) Min() (key K, ok bool) {
	node := tree.root
	if node == nil {
		return key, false
	}
	for node.left != nil {
		node = node.left
	}
	return node.key, true
}

// Max returns the largest key. ok is false for an empty tree.
func (tree *Tree[K]) Max() (key K, ok bool) {
	node := tree.root
	if node == nil {
		return key, false
	}
	for node.right != nil {
		node = node.right
	}
	return node.key, true
}
