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

/*
Package avl provides a self-balancing binary search tree keyed by any
ordered type.

	Space   O(n)
	Search  O(log n)
	Insert  O(log n)

Insertion is recursive and returns the (possibly rotated) subtree root to
the caller, so nodes carry no parent pointer and every node is owned by
exactly one child slot. Inserting a key that is already present leaves the
tree untouched. There is no delete.

A tree is not safe for concurrent use: either confine it to one goroutine
or guard the whole tree with a single mutex, since any insert can reshape
the path from the root down.
*/
package avl
