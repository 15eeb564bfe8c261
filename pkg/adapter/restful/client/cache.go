// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package client

import (
	"strings"
	"sync"
)

// CarsKey is the cache key of the whole catalog listing. Detail keys
// are nested under it, so invalidating the CarsKey prefix drops the
// listing and every cached detail record together.
const CarsKey = "cars"

// CarDetailKey formats the cache key of one car record.
func CarDetailKey(id string) string {
	return CarsKey + "/detail/" + id
}

// Cache memoizes successful read responses by their query key, so
// repeated reads are served locally until a mutation invalidates
// them. It is safe for concurrent use.
type Cache struct {
	mutex   sync.Mutex
	entries map[string]any
}

// NewCache creates an empty Cache instance.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]any),
	}
}

// Get returns the cached value of the key query key, if any.
func (c *Cache) Get(key string) (any, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores the value of the key query key.
func (c *Cache) Put(key string, value any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[key] = value
}

// Invalidate drops all entries whose query key is equal to or nested
// under the prefix key, like the listing and all detail records when
// it is called with the CarsKey prefix.
func (c *Cache) Invalidate(prefix string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for key := range c.entries {
		if key == prefix || strings.HasPrefix(key, prefix+"/") {
			delete(c.entries, key)
		}
	}
}
