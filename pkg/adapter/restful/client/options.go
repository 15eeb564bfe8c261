// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package client

import (
	"errors"
	"net/http"
)

// Option customizes a Client instance during its construction.
type Option func(*Client) error

// WithHTTPClient replaces the default HTTP client, so callers may
// control timeouts and transports, and tests may inject their own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		if c.hc != nil {
			return errors.New("http client is already configured")
		}
		c.hc = hc
		return nil
	}
}

// WithCache replaces the default empty cache, so one cache instance
// may be shared among multiple clients.
func WithCache(cache *Cache) Option {
	return func(c *Client) error {
		if cache == nil {
			return errors.New("cache must not be nil")
		}
		if c.cache != nil {
			return errors.New("cache is already configured")
		}
		c.cache = cache
		return nil
	}
}
