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

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DefaultMaxWordLength is the exclusive upper bound on word length.
const DefaultMaxWordLength = 15

// Option configures a solve call.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables shared by both engines.
type Options struct {
	// Rand shuffles the private dictionary copy before it is indexed.
	Rand *rand.Rand

	// MaxWordLength is the exclusive upper bound on word length.
	MaxWordLength int

	// MaxEnqueues, if > 0, aborts the best-first engine with ErrSearchLimit
	// once that many paths have been enqueued. 0 means unlimited.
	MaxEnqueues int

	// OnEnqueue is called for every path added to a frontier or queue.
	OnEnqueue func(p Path)

	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns deterministic defaults: a fixed-seed source, the
// standard word length bound, no enqueue budget and a discarding logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return Options{
		Rand:          rand.New(rand.NewSource(defaultSeed)),
		MaxWordLength: DefaultMaxWordLength,
		OnEnqueue:     func(Path) {},
		Logger:        silent,
	}
}

// WithRand sets the randomness source used to shuffle the dictionary.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSeed seeds a fresh randomness source. Seed 0 keeps the default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Rand = rand.New(rand.NewSource(seed))
		}
	}
}

// WithMaxWordLength overrides the exclusive word length bound.
func WithMaxWordLength(n int) Option {
	return func(o *Options) {
		if n <= 1 {
			o.err = fmt.Errorf("%w: MaxWordLength must exceed 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWordLength = n
	}
}

// WithMaxEnqueues bounds the best-first engine.
//
//	n > 0: limit to n enqueues
//	n == 0: unlimited
//	n < 0: invalid option → ErrOptionViolation
func WithMaxEnqueues(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxEnqueues cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxEnqueues = n
	}
}

// WithOnEnqueue registers a callback run whenever a path is enqueued.
func WithOnEnqueue(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithLogger routes debug output to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
