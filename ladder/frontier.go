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

import "cmp"

type frontierEntry struct {
	path     Path
	priority int
	seq      uint64 // insertion order, breaks priority ties
}

func compareEntries(a, b frontierEntry) int {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// Frontier is a priority queue of paths ordered by Path.Priority. Paths with
// equal priority leave in the order they were inserted.
type Frontier struct {
	tree *Tree[frontierEntry]
	seq  uint64
}

func NewFrontier() *Frontier {
	return &Frontier{tree: NewTree(compareEntries)}
}

// Insert enqueues p. Paths ending on the same word are kept side by side.
func (f *Frontier) Insert(p Path) {
	f.tree.Insert(frontierEntry{path: p, priority: p.Priority(), seq: f.seq})
	f.seq++
}

// PopMinimum removes and returns the path with the lowest priority.
func (f *Frontier) PopMinimum() (Path, error) {
	e, ok := f.tree.ExtractMin()
	if !ok {
		return Path{}, ErrUnderflow
	}
	return e.path, nil
}

func (f *Frontier) Len() int {
	return f.tree.Len()
}

func (f *Frontier) IsEmpty() bool {
	return f.tree.IsEmpty()
}

func (f *Frontier) Clear() {
	f.tree.Clear()
}
