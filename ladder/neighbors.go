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

import "iter"

// AlphabetSize is the number of substitutions tried at each letter position.
const AlphabetSize = 26

// Neighbors yields every single-letter substitution of word, position by
// position and 'a' through 'z' within a position. The unchanged word is
// produced once per position as well, giving exactly 26*len(word) values.
func Neighbors(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := []byte(word)
		for i := range buf {
			original := buf[i]
			for c := byte('a'); c <= 'z'; c++ {
				buf[i] = c
				if !yield(string(buf)) {
					return
				}
			}
			buf[i] = original
		}
	}
}

// HammingDistance counts the positions at which a and b differ. Letters past
// the end of the shorter word count as differences.
func HammingDistance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	distance := len(b) - len(a)
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance
}

// IsLadder reports whether every consecutive pair of words differs in exactly
// one position and, when contains is non-nil, every word is known to it.
func IsLadder(words []string, contains func(string) bool) bool {
	if len(words) == 0 {
		return false
	}
	for i, w := range words {
		if contains != nil && !contains(w) {
			return false
		}
		if i > 0 && (len(w) != len(words[i-1]) || HammingDistance(w, words[i-1]) != 1) {
			return false
		}
	}
	return true
}
