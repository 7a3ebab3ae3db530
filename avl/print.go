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

import (
	"cmp"
	"fmt"
	"io"
)

// Position labels used by Print.
const (
	PositionRoot  = "Root"
	PositionLeft  = "Left child"
	PositionRight = "Right child"
)

type printOptions struct {
	heights  bool
	indent   string
	decorate func(position string, line string) string
}

// PrintOption tweaks the output of Print.
type PrintOption func(*printOptions)

// WithHeights appends the stored height to every line.
func WithHeights() PrintOption {
	return func(o *printOptions) { o.heights = true }
}

// WithIndent sets the per-level indent (two spaces by default).
func WithIndent(indent string) PrintOption {
	return func(o *printOptions) { o.indent = indent }
}

// WithDecorator passes every finished line through fn before it is
// written, which lets callers colour lines by position.
func WithDecorator(fn func(position string, line string) string) PrintOption {
	return func(o *printOptions) { o.decorate = fn }
}

// Print writes an indented dump of the tree to w, one node per line:
//
//	- Root: 20 (BF: 0)
//	  - Left child: 10 (BF: 0)
//	  - Right child: 30 (BF: 0)
//
// Nothing is written for an empty tree.
func (tree *Tree[K]) Print(w io.Writer, opts ...PrintOption) error {
	o := printOptions{indent: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	return printTree(w, tree.root, "", PositionRoot, &o)
}

func printTree[K cmp.Ordered](w io.Writer, node *Node[K], prefix string, position string, o *printOptions) error {
	if node == nil {
		return nil
	}

	line := fmt.Sprintf("%s- %s: %v (BF: %d", prefix, position, node.key, BalanceFactor(node))
	if o.heights {
		line += fmt.Sprintf(", H: %d", node.height)
	}
	line += ")"
	if o.decorate != nil {
		line = o.decorate(position, line)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if err := printTree(w, node.left, prefix+o.indent, PositionLeft, o); err != nil {
		return err
	}
	return printTree(w, node.right, prefix+o.indent, PositionRight, o)
}
