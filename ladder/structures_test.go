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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary(t *testing.T) {
	words := []string{"cat", "cot", "cog", "dog", "dot"}
	original := slices.Clone(words)

	d := NewDictionary(words, rand.New(rand.NewSource(99)))
	assert.Equal(t, original, words, "caller slice must not be shuffled")
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 3, d.WordLength())

	for _, w := range words {
		assert.True(t, d.Contains(w), w)
	}
	assert.False(t, d.Contains("cab"))

	assert.False(t, d.Insert("cat"), "duplicates are rejected")
	assert.True(t, d.Insert("cab"))
	assert.Equal(t, 6, d.Len())

	assert.True(t, d.Remove("cab"))
	assert.False(t, d.Remove("cab"))
	assert.False(t, d.Contains("cab"))
	checkAVL(t, d.words)
}

func TestDictionaryNilRandIsDeterministic(t *testing.T) {
	words := []string{"lead", "load", "goad", "gold", "bead", "bold", "road"}
	a := NewDictionary(words, nil)
	b := NewDictionary(words, nil)

	var shapeA, shapeB []string
	preOrder(a.words.Root, &shapeA)
	preOrder(b.words.Root, &shapeB)
	assert.Equal(t, shapeA, shapeB)
}

func preOrder(node *AVLNode[string], out *[]string) {
	if node == nil {
		return
	}
	*out = append(*out, node.Key)
	preOrder(node.Left, out)
	preOrder(node.Right, out)
}

func TestNeighbors(t *testing.T) {
	for _, word := range []string{"a", "cat", "stone", "happily"} {
		var got []string
		for n := range Neighbors(word) {
			got = append(got, n)
		}
		require.Len(t, got, AlphabetSize*len(word), word)

		noops := 0
		for _, n := range got {
			require.Len(t, n, len(word))
			switch HammingDistance(word, n) {
			case 0:
				noops++
			case 1:
			default:
				t.Fatalf("%q is not a single substitution of %q", n, word)
			}
		}
		assert.Equal(t, len(word), noops, "one no-op substitution per position")
	}
}

func TestNeighborsIsRestartableAndStoppable(t *testing.T) {
	seq := Neighbors("dog")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, "aog", first[0])
	assert.Equal(t, "doz", first[len(first)-1])

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestHammingDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"cold", "cold", 0},
		{"cold", "cord", 1},
		{"cold", "warm", 4},
		{"", "", 0},
		{"ab", "abcd", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HammingDistance(tc.a, tc.b), "%s/%s", tc.a, tc.b)
	}
}

func TestIsLadder(t *testing.T) {
	dict := map[string]bool{"cat": true, "cot": true, "cog": true, "dog": true}
	contains := func(w string) bool { return dict[w] }

	assert.True(t, IsLadder([]string{"cat", "cot", "cog", "dog"}, contains))
	assert.True(t, IsLadder([]string{"cat"}, contains))
	assert.False(t, IsLadder(nil, contains))
	assert.False(t, IsLadder([]string{"cat", "cog"}, contains), "two letters changed")
	assert.False(t, IsLadder([]string{"cat", "cat"}, contains), "no letter changed")
	assert.False(t, IsLadder([]string{"cat", "bat"}, contains), "bat is not a word")
	assert.True(t, IsLadder([]string{"cat", "bat"}, nil))
}

func TestPath(t *testing.T) {
	p := NewPath("cold", "warm")
	assert.Equal(t, "cold", p.Tail())
	assert.Equal(t, 0, p.Moves())
	assert.Equal(t, 4, p.Priority())

	q := p.Extend("cord")
	r := p.Extend("bold")

	assert.Equal(t, []string{"cold"}, p.History(), "Extend must not mutate the receiver")
	assert.Equal(t, []string{"cold", "cord"}, q.History())
	assert.Equal(t, []string{"cold", "bold"}, r.History())
	assert.Equal(t, 1, q.Moves())
	assert.Equal(t, 1+3, q.Priority())
	assert.Equal(t, "warm", q.Target())

	assert.True(t, q.Visited("cold"))
	assert.False(t, q.Visited("bold"))

	h := q.History()
	h[0] = "zzzz"
	assert.Equal(t, "cold", q.History()[0], "History returns a copy")

	for _, path := range []Path{p, q, r} {
		assert.Equal(t, path.Moves()+1, len(path.History()))
		assert.Equal(t, path.History()[path.Moves()], path.Tail())
	}
	assert.Equal(t, "Word cord Moves 1 Ladder [cold cord]", q.String())
}

func TestFrontierOrdering(t *testing.T) {
	f := NewFrontier()
	_, err := f.PopMinimum()
	assert.ErrorIs(t, err, ErrUnderflow)

	start := NewPath("cold", "warm")
	far := start.Extend("bold")      // 1 + 4
	near := start.Extend("cord")     // 1 + 3
	tie := start.Extend("colt")      // 1 + 4, inserted after far
	closer := near.Extend("card")    // 2 + 2
	alsoClose := near.Extend("word") // 2 + 2, inserted after closer
	for _, p := range []Path{far, near, tie, closer, alsoClose} {
		f.Insert(p)
	}
	require.Equal(t, 5, f.Len())

	var order []string
	for !f.IsEmpty() {
		p, err := f.PopMinimum()
		require.NoError(t, err)
		order = append(order, p.Tail())
	}
	assert.Equal(t, []string{"cord", "card", "word", "bold", "colt"}, order)
}

func TestFrontierAllowsSameWordTwice(t *testing.T) {
	f := NewFrontier()
	a := NewPath("cat", "dog").Extend("cot").Extend("cog")
	b := NewPath("cat", "dog").Extend("cag").Extend("cog")
	f.Insert(a)
	f.Insert(b)
	assert.Equal(t, 2, f.Len())

	first, err := f.PopMinimum()
	require.NoError(t, err)
	second, err := f.PopMinimum()
	require.NoError(t, err)
	assert.Equal(t, a.History(), first.History())
	assert.Equal(t, b.History(), second.History())

	f.Insert(a)
	f.Clear()
	assert.True(t, f.IsEmpty())
}
