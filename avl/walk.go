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

// InOrder returns the keys in ascending order.
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.count)
	inOrder(tree.root, &keys)
	return keys
}

func inOrder[K cmp.Ordered](node *Node[K], keys *[]K) {
	if node == nil {
		return
	}
	inOrder(node.left, keys)
	*keys = append(*keys, node.key)
	inOrder(node.right, keys)
}

// PreOrder returns the keys root first, then left and right subtrees.
func (tree *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(func(node *Node[K], _ int) bool {
		keys = append(keys, node.key)
		return true
	})
	return keys
}

// PostOrder returns the keys of both subtrees before their root.
func (tree *Tree[K]) PostOrder() []K {
	keys := make([]K, 0, tree.count)
	postOrder(tree.root, &keys)
	return keys
}

func postOrder[K cmp.Ordered](node *Node[K], keys *[]K) {
	if node == nil {
		return
	}
	postOrder(node.left, keys)
	postOrder(node.right, keys)
	*keys = append(*keys, node.key)
}

// Walk visits every node in pre-order together with its depth (root = 0).
// Returning false from fn stops the walk.
func (tree *Tree[K]) Walk(fn func(node *Node[K], depth int) bool) {
	walk(tree.root, 0, fn)
}

func walk[K cmp.Ordered](node *Node[K], depth int, fn func(*Node[K], int) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node, depth) {
		return false
	}
	if !walk(node.left, depth+1, fn) {
		return false
	}
	return walk(node.right, depth+1, fn)
}
