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

// SolveBestFirst searches for a ladder from start to end, always expanding
// the path with the lowest moves-plus-distance priority.
//
// Cycles are only checked against the expanded path's own history, never a
// global visited set, so a cheaper route to a word discovered after a
// costlier one is not preferred. The returned ladder is valid but not
// necessarily the shortest.
//
// Returns ErrNoLadderFound when the frontier drains and ErrSearchLimit when
// the MaxEnqueues budget is spent.
func SolveBestFirst(start, end string, words []string, opts ...Option) (*Result, error) {
	s, err := newSearch(BestFirst, start, end, opts)
	if err != nil {
		return nil, err
	}
	if start == end {
		return s.found(NewPath(start, end)), nil
	}

	s.index(words)
	// Only dictionary words are ever enqueued, so an absent goal is unreachable.
	if !s.dict.Contains(end) {
		return nil, s.exhausted()
	}

	frontier := NewFrontier()
	defer frontier.Clear()

	seed := NewPath(start, end)
	frontier.Insert(seed)
	s.enqueued(seed)

	for !frontier.IsEmpty() {
		info, err := frontier.PopMinimum()
		if err != nil {
			return nil, err
		}

		for candidate := range Neighbors(info.Tail()) {
			if !s.dict.Contains(candidate) || info.Visited(candidate) {
				continue
			}

			next := info.Extend(candidate)
			frontier.Insert(next)
			s.enqueued(next)

			if candidate == end {
				return s.found(next), nil
			}
			if s.opts.MaxEnqueues > 0 && s.enqueues >= s.opts.MaxEnqueues {
				s.log.WithField("enqueues", s.enqueues).Debug("enqueue budget spent")
				return nil, fmt.Errorf("%w: %s -> %s after %d enqueues", ErrSearchLimit, start, end, s.enqueues)
			}
		}
	}

	return nil, s.exhausted()
}
