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

// Package ladder finds word ladders: sequences of same-length dictionary
// words where consecutive words differ in exactly one letter.
//
// Two engines are provided. SolveBreadthFirst always returns a ladder of
// minimum length. SolveBestFirst orders its frontier by moves plus Hamming
// distance to the goal and usually finds short ladders with fewer enqueues,
// but it keeps no global visited set and so may return a longer ladder.
package ladder

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Strategy names a search engine.
type Strategy int

const (
	BestFirst Strategy = iota
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case BestFirst:
		return "A*"
	case BreadthFirst:
		return "Brute Force"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Result is a solved ladder.
type Result struct {
	Strategy Strategy
	Ladder   []string
	Moves    int
	Enqueues int
	Elapsed  time.Duration
}

func (r *Result) String() string {
	return fmt.Sprintf("Word %s Moves %d Ladder [%s]", r.Ladder[len(r.Ladder)-1], r.Moves, strings.Join(r.Ladder, " "))
}

// Validate checks the preconditions shared by both engines.
func Validate(start, end string, maxWordLength int) error {
	switch {
	case len(start) != len(end):
		return fmt.Errorf("%w: %q (%d) and %q (%d)", ErrLengthMismatch, start, len(start), end, len(end))
	case len(start) >= maxWordLength:
		return fmt.Errorf("%w: %q has %d letters, limit is %d", ErrWordTooLong, start, len(start), maxWordLength-1)
	case len(start) == 0:
		return ErrEmptyWord
	}
	return nil
}

// Solve runs the engine named by strategy.
func Solve(strategy Strategy, start, end string, words []string, opts ...Option) (*Result, error) {
	switch strategy {
	case BestFirst:
		return SolveBestFirst(start, end, words, opts...)
	case BreadthFirst:
		return SolveBreadthFirst(start, end, words, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, strategy)
	}
}

// search is the state shared by one solve call.
type search struct {
	strategy Strategy
	start    string
	end      string
	opts     Options
	log      logrus.FieldLogger
	dict     *Dictionary
	enqueues int
	began    time.Time
}

func newSearch(strategy Strategy, start, end string, opts []Option) (*search, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := Validate(start, end, o.MaxWordLength); err != nil {
		return nil, err
	}
	return &search{
		strategy: strategy,
		start:    start,
		end:      end,
		opts:     o,
		log: o.Logger.WithFields(logrus.Fields{
			"strategy": strategy.String(),
			"start":    start,
			"end":      end,
		}),
		began: time.Now(),
	}, nil
}

// index builds the private dictionary for this call.
func (s *search) index(words []string) {
	s.dict = NewDictionary(words, s.opts.Rand)
	s.log.Debugf("indexed %d words", s.dict.Len())
}

func (s *search) enqueued(p Path) {
	s.enqueues++
	s.opts.OnEnqueue(p)
}

func (s *search) found(p Path) *Result {
	res := &Result{
		Strategy: s.strategy,
		Ladder:   p.History(),
		Moves:    p.Moves(),
		Enqueues: s.enqueues,
		Elapsed:  time.Since(s.began),
	}
	s.log.WithField("enqueues", s.enqueues).Debugf("found ladder with %d moves", res.Moves)
	return res
}

func (s *search) exhausted() error {
	s.log.WithField("enqueues", s.enqueues).Debug("search exhausted")
	return fmt.Errorf("%w: %s -> %s after %d enqueues", ErrNoLadderFound, s.start, s.end, s.enqueues)
}
