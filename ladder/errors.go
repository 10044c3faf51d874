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

import "errors"

// Sentinel errors returned by the solvers and the underlying structures.
// They are always wrapped with the offending input, so compare with errors.Is.
var (
	// ErrLengthMismatch is returned when start and end words differ in length.
	ErrLengthMismatch = errors.New("ladder: words are not the same length")

	// ErrWordTooLong is returned when the words reach the configured maximum length.
	ErrWordTooLong = errors.New("ladder: words are too long")

	// ErrEmptyWord is returned when the words have no letters.
	ErrEmptyWord = errors.New("ladder: words must have at least one letter")

	// ErrWordNotInDictionary is returned by the breadth-first engine when
	// start or end is missing from the dictionary.
	ErrWordNotInDictionary = errors.New("ladder: word not in dictionary")

	// ErrUnderflow signals a minimum/maximum lookup or extraction on an empty structure.
	ErrUnderflow = errors.New("ladder: underflow on empty structure")

	// ErrNoLadderFound is returned when a search exhausts its frontier.
	ErrNoLadderFound = errors.New("ladder: no ladder exists")

	// ErrSearchLimit is returned when a search exceeds its enqueue budget.
	ErrSearchLimit = errors.New("ladder: search limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)
