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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

A small toolkit for watching an AVL tree balance itself. Insert keys, see every
rotation's result with per-node balance factors, and query membership.

Built with Go %s

# 1. Commands
* **run** – interactive visualizer (default)
* **insert 10 20 30** – build a tree and print it
* **contains 15 --keys 10,20,5** – membership test
* **check --file keys.txt** – verify the BST, balance and height invariants
* **watch keys.txt** – reprint the tree whenever the file gains keys
* **settings** – show or create ~/.avlkit.yaml

# 2. Key files
Keys are integers separated by spaces, tabs, commas or newlines. A '#' starts a comment.

# 3. Reading the output
Each line shows a key and its balance factor, height(left) - height(right).
An AVL tree keeps every balance factor in -1, 0 or 1.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
