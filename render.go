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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlkit/avl"
)

const emptyTreeText = "(empty tree)"

// renderTree returns the indented dump of tree using the display settings.
func renderTree(tree *avl.Tree[int], display DisplayConfig) string {
	if tree.IsEmpty() {
		return emptyTreeText
	}

	var opts []avl.PrintOption
	if display.ShowHeights {
		opts = append(opts, avl.WithHeights())
	}
	if display.Color {
		opts = append(opts, avl.WithDecorator(positionDecorator(GetColorScheme())))
	}

	var sb strings.Builder
	// strings.Builder never fails
	_ = tree.Print(&sb, opts...)
	return strings.TrimRight(sb.String(), "\n")
}

func positionDecorator(scheme *ColorScheme) func(position, line string) string {
	styles := map[string]lipgloss.Style{
		avl.PositionRoot:  lipgloss.NewStyle().Foreground(scheme.Root).Bold(true),
		avl.PositionLeft:  lipgloss.NewStyle().Foreground(scheme.Left),
		avl.PositionRight: lipgloss.NewStyle().Foreground(scheme.Right),
	}
	return func(position, line string) string {
		style, ok := styles[position]
		if !ok {
			return line
		}
		// keep the indent uncoloured
		trimmed := strings.TrimLeft(line, " \t")
		return line[:len(line)-len(trimmed)] + style.Render(trimmed)
	}
}

// treeSummary is the one-line status shown under every dump.
func treeSummary(tree *avl.Tree[int]) string {
	if tree.IsEmpty() {
		return "0 keys"
	}
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	return fmt.Sprintf("%d keys, height %d, root %d, range [%d, %d]",
		tree.Len(), avl.Height(tree.Root()), tree.Root().Key(), lo, hi)
}
