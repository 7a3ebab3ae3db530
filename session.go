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

	"github.com/cybrota/avlkit/keyfile"
	"github.com/cybrota/avlkit/keyset"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

type ActionKind int

const (
	ActionInsert ActionKind = iota
	ActionContains
	ActionDepth
	ActionReset
	ActionHelp
)

var actionNames = map[string]ActionKind{
	"insert":   ActionInsert,
	"add":      ActionInsert,
	"i":        ActionInsert,
	"contains": ActionContains,
	"has":      ActionContains,
	"?":        ActionContains,
	"depth":    ActionDepth,
	"reset":    ActionReset,
	"clear":    ActionReset,
	"help":     ActionHelp,
}

var ErrUnknownAction = errors.New("unknown command")

// Action is one parsed visualizer input line.
type Action struct {
	Kind ActionKind
	Keys []int
}

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

// parseAction understands "insert 1 2 3", "contains 5", "depth 5", "reset"
// and "help". A line of bare numbers is an insert.
func parseAction(line string) (*Action, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, nil
	}

	kind, ok := actionNames[strings.ToLower(parts[0])]
	if !ok {
		// maybe "10 20 30"
		keys, err := keyfile.ParseArgs(parts)
		if err != nil {
			return nil, errors.Wrapf(ErrUnknownAction, "%q (try help)", parts[0])
		}
		return &Action{Kind: ActionInsert, Keys: keys}, nil
	}

	keys, err := keyfile.ParseArgs(parts[1:])
	if err != nil {
		return nil, err
	}

	switch kind {
	case ActionInsert, ActionContains, ActionDepth:
		if len(keys) == 0 {
			return nil, errors.Errorf("%s needs at least one key", parts[0])
		}
	}
	return &Action{Kind: kind, Keys: keys}, nil
}

// Session is the state behind the interactive visualizer.
type Session struct {
	set     *keyset.Set
	config  *Config
	renders *cache.Cache
}

func NewSession(config *Config) *Session {
	return &Session{
		set:     newKeySet(config),
		config:  config,
		renders: NewRenderCache(),
	}
}

// Exec runs one input line and returns a status message for the user.
func (s *Session) Exec(line string) (string, error) {
	action, err := parseAction(line)
	if err != nil {
		return "", err
	}
	if action == nil {
		return "", nil
	}

	switch action.Kind {
	case ActionInsert:
		added := s.set.Add(action.Keys...)
		if err := s.set.Tree().Check(); err != nil {
			// cannot happen unless the tree is broken
			return "", err
		}
		return fmt.Sprintf("inserted %d new of %d keys", added, len(action.Keys)), nil

	case ActionContains:
		results := make([]string, 0, len(action.Keys))
		for _, key := range action.Keys {
			results = append(results, fmt.Sprintf("contains(%d) = %t", key, s.set.Contains(key)))
		}
		return strings.Join(results, ", "), nil

	case ActionDepth:
		results := make([]string, 0, len(action.Keys))
		for _, key := range action.Keys {
			results = append(results, fmt.Sprintf("depth(%d) = %d", key, s.set.Tree().Depth(key)))
		}
		return strings.Join(results, ", "), nil

	case ActionReset:
		s.set = newKeySet(s.config)
		s.renders.Flush()
		return "tree cleared", nil

	case ActionHelp:
		return "commands: insert K..., contains K..., depth K..., reset, help", nil
	}

	return "", ErrUnknownAction
}

// Dump returns the current tree dump, cached per shape.
func (s *Session) Dump() string {
	return GetOrRender(s.renders, s.set.Tree(), s.config.Display)
}

// PlainDump renders the tree without colour, for the clipboard.
func (s *Session) PlainDump() string {
	return renderTree(s.set.Tree(), DisplayConfig{ShowHeights: s.config.Display.ShowHeights})
}

func (s *Session) Summary() string {
	return treeSummary(s.set.Tree())
}
