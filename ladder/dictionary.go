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

import "math/rand"

// defaultSeed is used whenever no randomness source is supplied, so that
// runs without an explicit source stay reproducible.
const defaultSeed int64 = 1

// Dictionary is a set of distinct words of one length backed by an AVL tree.
type Dictionary struct {
	words  *Tree[string]
	length int
}

// NewDictionary indexes words in a shuffled order. The caller's slice is
// left untouched; rng may be nil.
func NewDictionary(words []string, rng *rand.Rand) *Dictionary {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	shuffled := make([]string, len(words))
	copy(shuffled, words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	d := &Dictionary{words: NewOrderedTree[string]()}
	for _, w := range shuffled {
		d.Insert(w)
	}
	return d
}

// Insert adds word unless it is already present.
func (d *Dictionary) Insert(word string) bool {
	if d.words.Contains(word) {
		return false
	}
	if d.length == 0 {
		d.length = len(word)
	}
	d.words.Insert(word)
	return true
}

func (d *Dictionary) Contains(word string) bool {
	return d.words.Contains(word)
}

// Remove evicts word and reports whether it was present.
func (d *Dictionary) Remove(word string) bool {
	return d.words.RemoveOne(word)
}

func (d *Dictionary) Len() int {
	return d.words.Len()
}

// WordLength is the length of the first word inserted, or 0 for an empty dictionary.
func (d *Dictionary) WordLength() int {
	return d.length
}
