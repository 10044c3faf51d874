// cache.go

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

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/laddergame/ladder"
)

const (
	// Solved ladders stay valid as long as the dictionary does; the expiry
	// only bounds memory in long interactive sessions.
	ladderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	ladderCacheCleanup = 5 * time.Minute
)

// NewLadderCache creates a cache for solved ladders.
func NewLadderCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, ladderCacheCleanup)
}

func ladderCacheKey(strategy ladder.Strategy, start, end string) string {
	return fmt.Sprintf("%d|%s|%s", strategy, start, end)
}

// CacheLadder stores a finished search outcome, failures included.
func CacheLadder(c *cache.Cache, strategy ladder.Strategy, start, end string, outcome Outcome) {
	c.SetDefault(ladderCacheKey(strategy, start, end), outcome)
}

// GetCachedLadder returns a previously stored outcome.
func GetCachedLadder(c *cache.Cache, strategy ladder.Strategy, start, end string) (Outcome, bool) {
	val, ok := c.Get(ladderCacheKey(strategy, start, end))
	if !ok {
		return Outcome{}, false
	}
	return val.(Outcome), true
}
