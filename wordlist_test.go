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
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWords(t *testing.T, text string) *WordList {
	t.Helper()
	wl, err := LoadWordList(strings.NewReader(text), 15, LoadOptions{})
	require.NoError(t, err)
	return wl
}

func TestLoadWordListBucketsByLength(t *testing.T) {
	wl := loadWords(t, "cat dog\ncold\twarm\n  stone money\n")

	assert.Equal(t, []string{"cat", "dog"}, wl.Bucket(3))
	assert.Equal(t, []string{"cold", "warm"}, wl.Bucket(4))
	assert.Equal(t, []string{"stone", "money"}, wl.Bucket(5))
	assert.Equal(t, []int{3, 4, 5}, wl.Lengths())
	assert.Equal(t, 6, wl.Size())
	assert.Equal(t, 15, wl.MaxWordLength())
}

func TestLoadWordListLowercasesAndDeduplicates(t *testing.T) {
	wl := loadWords(t, "Cat CAT cat dog Dog")

	assert.Equal(t, []string{"cat", "dog"}, wl.Bucket(3))
	assert.Equal(t, 2, wl.Size())
}

func TestLoadWordListSkipsUnusableWords(t *testing.T) {
	wl := loadWords(t, "don't café a-b x2y abcdefghijklmno abcdefghijklmn ok")

	// fifteen letters reach the limit; fourteen are still allowed
	assert.Nil(t, wl.Bucket(15))
	assert.Equal(t, []string{"abcdefghijklmn"}, wl.Bucket(14))
	assert.Equal(t, []string{"ok"}, wl.Bucket(2))
	assert.Equal(t, 2, wl.Size())
}

func TestLoadWordListEmpty(t *testing.T) {
	_, err := LoadWordList(strings.NewReader("1234 !!!"), 15, LoadOptions{})
	assert.ErrorIs(t, err, errNoWords)
}

func TestLoadWordListProgress(t *testing.T) {
	var progress bytes.Buffer
	wl, err := LoadWordList(strings.NewReader("cat dog cot"), 15, LoadOptions{
		ShowProgress: true,
		Progress:     &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, wl.Size())
	assert.NotZero(t, progress.Len())
}

func TestLoadWordListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cold\ncord\ncard\nward\nwarm\n"), 0644))

	wl, err := LoadWordListFile(path, 15, LoadOptions{})
	require.NoError(t, err)
	assert.Len(t, wl.Bucket(4), 5)

	_, err = LoadWordListFile(filepath.Join(t.TempDir(), "missing.txt"), 15, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBucketOutOfRange(t *testing.T) {
	wl := loadWords(t, "cat")
	assert.Nil(t, wl.Bucket(0))
	assert.Nil(t, wl.Bucket(-1))
	assert.Nil(t, wl.Bucket(99))
}

func TestRandomPair(t *testing.T) {
	wl := loadWords(t, "cat dog cot cold warm a")
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		start, end, err := wl.RandomPair(3, rng)
		require.NoError(t, err)
		assert.Len(t, start, 3)
		assert.Len(t, end, 3)
		assert.NotEqual(t, start, end)
	}

	for i := 0; i < 50; i++ {
		start, end, err := wl.RandomPair(0, rng)
		require.NoError(t, err)
		assert.Equal(t, len(start), len(end))
		// length 1 has a single word and is never picked
		assert.NotEqual(t, 1, len(start))
		assert.NotEqual(t, start, end)
	}

	_, _, err := wl.RandomPair(1, rng)
	assert.Error(t, err)
	_, _, err = wl.RandomPair(9, rng)
	assert.Error(t, err)
}
