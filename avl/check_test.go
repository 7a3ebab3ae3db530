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
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	leaf := func(key int) *Node[int] { return &Node[int]{key: key, height: 1} }

	testCases := []struct {
		Name string
		Tree *Tree[int]
		Want error
	}{
		{
			Name: "empty",
			Tree: New[int](),
		},
		{
			Name: "valid",
			Tree: buildTree(4, 2, 6, 1, 3, 5, 7),
		},
		{
			Name: "left child too large",
			Tree: &Tree[int]{
				root:  &Node[int]{key: 5, height: 2, left: leaf(9), right: leaf(7)},
				count: 3,
			},
			Want: ErrOrder,
		},
		{
			Name: "grandchild violates ancestor bound",
			Tree: &Tree[int]{
				root: &Node[int]{key: 10, height: 3,
					left:  &Node[int]{key: 5, height: 2, right: leaf(12)},
					right: leaf(15),
				},
				count: 4,
			},
			Want: ErrOrder,
		},
		{
			Name: "equal keys",
			Tree: &Tree[int]{
				root:  &Node[int]{key: 5, height: 2, right: leaf(5)},
				count: 2,
			},
			Want: ErrOrder,
		},
		{
			Name: "stale height",
			Tree: &Tree[int]{
				root:  &Node[int]{key: 5, height: 1, left: leaf(3)},
				count: 2,
			},
			Want: ErrHeight,
		},
		{
			Name: "unbalanced chain",
			Tree: &Tree[int]{
				root: &Node[int]{key: 1, height: 3,
					right: &Node[int]{key: 2, height: 2, right: leaf(3)},
				},
				count: 3,
			},
			Want: ErrBalance,
		},
		{
			Name: "count mismatch",
			Tree: &Tree[int]{root: leaf(1), count: 2},
			Want: ErrCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Tree.Check()
			if tc.Want == nil {
				if err != nil {
					t.Errorf("Check() = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.Want) {
				t.Errorf("Check() = %v; want %v", err, tc.Want)
			}
		})
	}
}
