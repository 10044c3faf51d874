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

package ladder

import "fmt"

// SolveBreadthFirst finds a ladder of minimum length from start to end.
//
// The private dictionary doubles as the visited set: a word is removed the
// moment it is discovered, so no word is expanded twice and the search ends
// once the dictionary has nothing left to offer.
//
// Returns ErrWordNotInDictionary when start or end is unknown and
// ErrNoLadderFound when the queue drains.
func SolveBreadthFirst(start, end string, words []string, opts ...Option) (*Result, error) {
	s, err := newSearch(BreadthFirst, start, end, opts)
	if err != nil {
		return nil, err
	}
	if start == end {
		return s.found(NewPath(start, end)), nil
	}

	s.index(words)
	for _, w := range []string{start, end} {
		if !s.dict.Contains(w) {
			return nil, fmt.Errorf("%w: %q", ErrWordNotInDictionary, w)
		}
	}

	s.dict.Remove(start)
	seed := NewPath(start, end)
	queue := []Path{seed}
	s.enqueued(seed)

	for len(queue) > 0 {
		info := queue[0]
		queue = queue[1:]

		for candidate := range Neighbors(info.Tail()) {
			if !s.dict.Remove(candidate) {
				continue
			}

			next := info.Extend(candidate)
			queue = append(queue, next)
			s.enqueued(next)

			if candidate == end {
				return s.found(next), nil
			}
		}
	}

	return nil, s.exhausted()
}
