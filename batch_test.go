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
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/laddergame/ladder"
)

func TestParsePairs(t *testing.T) {
	input := `# warm-up pairs
cat dog

  cold   warm
"cot" 'cog'
`
	pairs, err := ParsePairs(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Line: 2, Start: "cat", End: "dog"},
		{Line: 4, Start: "cold", End: "warm"},
		{Line: 5, Start: "cot", End: "cog"},
	}, pairs)
}

func TestParsePairsCollectsMalformedLines(t *testing.T) {
	input := "cat dog\nlonely\ncold warm hot\n\"unterminated dog\ncot cog\n"

	pairs, err := ParsePairs(strings.NewReader(input))
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
	assert.Contains(t, err.Error(), "line 2: want 2 words, got 1")
	assert.Contains(t, err.Error(), "line 3: want 2 words, got 3")
	assert.Contains(t, err.Error(), "line 4:")

	// well-formed lines survive
	require.Len(t, pairs, 2)
	assert.Equal(t, "cat", pairs[0].Start)
	assert.Equal(t, 5, pairs[1].Line)
}

func TestRunBatch(t *testing.T) {
	game := newTestGame(t, nil)
	pairs := []Pair{
		{Line: 1, Start: "cat", End: "dog"},
		{Line: 2, Start: "cat", End: "cold"},
		{Line: 3, Start: "cot", End: "zzz"},
		{Line: 4, Start: "cold", End: "warm"},
	}

	var reports []*Report
	err := RunBatch(game, pairs, func(r *Report) { reports = append(reports, r) })

	assert.Len(t, reports, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ladder.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "line 2")
	// a missing word is a search outcome, not a rejected pair
	assert.NotContains(t, err.Error(), "line 3")
}

func TestRunBatchAllValid(t *testing.T) {
	game := newTestGame(t, nil)
	pairs := []Pair{{Line: 1, Start: "cold", End: "warm"}}

	err := RunBatch(game, pairs, func(*Report) {})
	assert.NoError(t, err)
}
