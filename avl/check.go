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

	"github.com/pkg/errors"
)

var (
	ErrOrder   = errors.New("keys out of order")
	ErrBalance = errors.New("balance factor out of range")
	ErrHeight  = errors.New("stored height is wrong")
	ErrCount   = errors.New("node count mismatch")
)

// Check walks the whole tree and verifies ordering, balance and stored
// heights. The first violation found is returned wrapped around one of the
// Err* values above.
func (tree *Tree[K]) Check() error {
	count := 0
	if err := check(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.count {
		return errors.Wrapf(ErrCount, "found %d nodes, Len() is %d", count, tree.count)
	}
	return nil
}

// lo and hi are exclusive bounds inherited from the ancestors, nil when open.
func check[K cmp.Ordered](node *Node[K], lo, hi *K, count *int) error {
	if node == nil {
		return nil
	}
	*count++

	if lo != nil && node.key <= *lo {
		return errors.Wrapf(ErrOrder, "key %v not greater than ancestor %v", node.key, *lo)
	}
	if hi != nil && node.key >= *hi {
		return errors.Wrapf(ErrOrder, "key %v not less than ancestor %v", node.key, *hi)
	}

	if err := check(node.left, lo, &node.key, count); err != nil {
		return err
	}
	if err := check(node.right, &node.key, hi, count); err != nil {
		return err
	}

	if want := max(Height(node.left), Height(node.right)) + 1; node.height != want {
		return errors.Wrapf(ErrHeight, "key %v has height %d, want %d", node.key, node.height, want)
	}
	if bf := BalanceFactor(node); bf < -1 || bf > 1 {
		return errors.Wrapf(ErrBalance, "key %v has balance factor %+d", node.key, bf)
	}
	return nil
}
