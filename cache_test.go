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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/laddergame/ladder"
)

func TestCacheLadderAndGetCachedLadder(t *testing.T) {
	c := NewLadderCache(ladderCacheExpiration)
	outcome := Outcome{
		Strategy: ladder.BreadthFirst,
		Result:   &ladder.Result{Strategy: ladder.BreadthFirst, Ladder: []string{"cat", "cot", "dot", "dog"}, Moves: 3},
	}

	// Initially, nothing is cached for the pair.
	if _, ok := GetCachedLadder(c, ladder.BreadthFirst, "cat", "dog"); ok {
		t.Errorf("GetCachedLadder(cat, dog) found an entry before caching")
	}

	CacheLadder(c, ladder.BreadthFirst, "cat", "dog", outcome)

	got, ok := GetCachedLadder(c, ladder.BreadthFirst, "cat", "dog")
	if !ok {
		t.Fatalf("GetCachedLadder(cat, dog) missed after caching")
	}
	if got.Result.Moves != 3 {
		t.Errorf("cached moves = %d; want 3", got.Result.Moves)
	}

	// Entries are keyed per strategy and per direction.
	if _, ok := GetCachedLadder(c, ladder.BestFirst, "cat", "dog"); ok {
		t.Errorf("entry leaked across strategies")
	}
	if _, ok := GetCachedLadder(c, ladder.BreadthFirst, "dog", "cat"); ok {
		t.Errorf("entry leaked to the reverse pair")
	}
}

func TestCacheKeepsFailures(t *testing.T) {
	c := NewLadderCache(ladderCacheExpiration)
	CacheLadder(c, ladder.BestFirst, "biff", "axal", Outcome{Strategy: ladder.BestFirst, Err: ladder.ErrNoLadderFound})

	got, ok := GetCachedLadder(c, ladder.BestFirst, "biff", "axal")
	if !ok {
		t.Fatalf("failed outcome was not cached")
	}
	if got.Err != ladder.ErrNoLadderFound {
		t.Errorf("cached error = %v; want %v", got.Err, ladder.ErrNoLadderFound)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheLadder(c, ladder.BestFirst, "cold", "warm", Outcome{Strategy: ladder.BestFirst})

	// Immediately after caching, the outcome should be retrievable.
	if _, ok := GetCachedLadder(c, ladder.BestFirst, "cold", "warm"); !ok {
		t.Errorf("GetCachedLadder(cold, warm) missed right after caching")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := GetCachedLadder(c, ladder.BestFirst, "cold", "warm"); ok {
		t.Errorf("GetCachedLadder(cold, warm) still present after expiry")
	}
}
