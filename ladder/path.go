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
	"strings"
)

// Path is a partial ladder: the words visited so far and the word it is
// heading for. A Path never changes once built; Extend returns a new one.
type Path struct {
	target  string
	moves   int
	history []string
}

// NewPath starts a ladder at start aimed at target.
func NewPath(start, target string) Path {
	return Path{target: target, history: []string{start}}
}

// Extend returns a new Path with word appended.
func (p Path) Extend(word string) Path {
	history := make([]string, len(p.history), len(p.history)+1)
	copy(history, p.history)
	return Path{
		target:  p.target,
		moves:   p.moves + 1,
		history: append(history, word),
	}
}

// Tail is the current (last) word.
func (p Path) Tail() string {
	return p.history[len(p.history)-1]
}

func (p Path) Moves() int {
	return p.moves
}

func (p Path) Target() string {
	return p.target
}

// History returns a copy of the words from start to tail.
func (p Path) History() []string {
	out := make([]string, len(p.history))
	copy(out, p.history)
	return out
}

// Visited reports whether word already appears on this path.
func (p Path) Visited(word string) bool {
	for _, w := range p.history {
		if w == word {
			return true
		}
	}
	return false
}

// Priority is moves so far plus the letters still differing from the target.
func (p Path) Priority() int {
	return p.moves + HammingDistance(p.Tail(), p.target)
}

func (p Path) String() string {
	return fmt.Sprintf("Word %s Moves %d Ladder [%s]", p.Tail(), p.moves, strings.Join(p.history, " "))
}
