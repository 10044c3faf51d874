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
	"math/rand"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/cybrota/laddergame/ladder"
)

// demoPairs are the fixed start/end pairs of the demonstration run.
var demoPairs = [][2]string{
	{"toes", "toed"},
	{"oops", "tots"},
	{"ride", "ands"},
	{"happily", "angrily"},
	{"slow", "fast"},
	{"stone", "money"},
	{"biff", "axal"},
}

// The demonstration finishes with one random pair per length in this range.
const (
	demoRandomFrom = 3
	demoRandomTo   = 6
)

var strategies = []ladder.Strategy{ladder.BestFirst, ladder.BreadthFirst}

// Outcome is what one engine produced for one pair.
type Outcome struct {
	Strategy ladder.Strategy
	Result   *ladder.Result
	Err      error
	Cached   bool
}

// Report collects both engines' outcomes for one pair. Err is set instead
// of Outcomes when the pair fails the boundary checks.
type Report struct {
	Start    string
	End      string
	ListSize int
	Outcomes []Outcome
	Err      error
}

// Game runs both engines against a loaded word list.
type Game struct {
	words  *WordList
	config *Config
	cache  *cache.Cache
	rng    *rand.Rand
	log    logrus.FieldLogger
}

// NewGame wires a word list to the search engines. A zero Search.Seed seeds
// the shuffles from the clock.
func NewGame(words *WordList, config *Config, log logrus.FieldLogger) *Game {
	seed := config.Search.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		words:  words,
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
		log:    log,
	}
	if config.Cache.Enabled {
		g.cache = NewLadderCache(config.Cache.Expiration)
	}
	return g
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Play searches for a ladder from start to end with every engine.
func (g *Game) Play(start, end string) *Report {
	start, end = normalizeWord(start), normalizeWord(end)
	report := &Report{Start: start, End: end}

	if err := ladder.Validate(start, end, g.config.Dictionary.MaxWordLength); err != nil {
		report.Err = err
		return report
	}

	bucket := g.words.Bucket(len(start))
	report.ListSize = len(bucket)

	for _, strategy := range strategies {
		report.Outcomes = append(report.Outcomes, g.solve(strategy, start, end, bucket))
	}
	return report
}

func (g *Game) solve(strategy ladder.Strategy, start, end string, bucket []string) Outcome {
	if g.cache != nil {
		if outcome, ok := GetCachedLadder(g.cache, strategy, start, end); ok {
			outcome.Cached = true
			return outcome
		}
	}

	res, err := ladder.Solve(strategy, start, end, bucket,
		ladder.WithRand(rand.New(rand.NewSource(g.rng.Int63()))),
		ladder.WithMaxWordLength(g.config.Dictionary.MaxWordLength),
		ladder.WithMaxEnqueues(g.budget(strategy)),
		ladder.WithLogger(g.log),
	)
	outcome := Outcome{Strategy: strategy, Result: res, Err: err}
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"strategy": strategy.String(),
			"start":    start,
			"end":      end,
		}).Debugf("search failed: %v", err)
	}

	if g.cache != nil {
		CacheLadder(g.cache, strategy, start, end, outcome)
	}
	return outcome
}

// budget is the enqueue limit handed to an engine. Only the best-first
// engine can revisit words, so it is the only one that needs a bound.
func (g *Game) budget(strategy ladder.Strategy) int {
	if strategy == ladder.BestFirst {
		return g.config.Search.MaxEnqueues
	}
	return 0
}

// PlayRandom plays a random pair of the given length (any length when 0).
func (g *Game) PlayRandom(length int) (*Report, error) {
	start, end, err := g.words.RandomPair(length, g.rng)
	if err != nil {
		return nil, err
	}
	return g.Play(start, end), nil
}

// Demo plays the fixed demonstration pairs followed by one random pair per
// length. Lengths without enough words are skipped with a warning.
func (g *Game) Demo(emit func(*Report)) {
	for _, pair := range demoPairs {
		emit(g.Play(pair[0], pair[1]))
	}
	for n := demoRandomFrom; n <= demoRandomTo; n++ {
		report, err := g.PlayRandom(n)
		if err != nil {
			g.log.Warnf("skipping random pair of length %d: %v", n, err)
			continue
		}
		emit(report)
	}
}
