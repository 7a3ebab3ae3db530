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
	"time"

	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
)

const (
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 2 * time.Minute
)

// NewRenderCache creates a cache for rendered tree dumps.
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// Within one session keys are only ever added, so the key count
// identifies the tree shape. Callers must Flush on reset.
func renderCacheKey(tree *avl.Tree[int], display DisplayConfig) string {
	return fmt.Sprintf("%d/%t/%t", tree.Len(), display.ShowHeights, display.Color)
}

func CacheRender(c *cache.Cache, key string, dump string) {
	c.Set(key, dump, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRender returns the cached dump for the tree's current shape,
// rendering and caching it on a miss.
func GetOrRender(c *cache.Cache, tree *avl.Tree[int], display DisplayConfig) string {
	key := renderCacheKey(tree, display)
	if dump := GetRender(c, key); dump != "" {
		return dump
	}
	dump := renderTree(tree, display)
	CacheRender(c, key, dump)
	return dump
}
