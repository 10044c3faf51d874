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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/willf/bloom"

	"github.com/cybrota/laddergame/ladder"
)

const (
	// Sized for a typical English word list; the filter degrades gracefully past it.
	bloomExpectedWords = 500_000
	bloomFalsePositive = 0.001
)

var errNoWords = errors.New("no words of a usable length")

// WordList buckets distinct lowercase words by length. Bucket i holds the
// words of length i in file order.
type WordList struct {
	buckets       [][]string
	maxWordLength int
	size          int
}

type LoadOptions struct {
	ShowProgress bool
	Progress     io.Writer // defaults to stderr
}

// LoadWordListFile opens path and loads it with LoadWordList.
func LoadWordListFile(path string, maxWordLength int, opts LoadOptions) (*WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dictionary file %s not found. Point --dictionary or dictionary.path in the config at a word list", path)
		}
		return nil, err
	}
	defer file.Close()

	start := time.Now()
	wl, err := LoadWordList(file, maxWordLength, opts)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"path":    path,
		"words":   wl.Size(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("dictionary loaded")
	return wl, nil
}

// LoadWordList reads whitespace-separated words from r. Words are lowercased;
// words of maxWordLength letters or more, and words containing anything other
// than the letters a-z, are skipped along with duplicates.
func LoadWordList(r io.Reader, maxWordLength int, opts LoadOptions) (*WordList, error) {
	wl := &WordList{
		buckets:       make([][]string, maxWordLength),
		maxWordLength: maxWordLength,
	}

	// The bloom filter answers "definitely new" for nearly every word; only
	// its positives are confirmed against the per-length index.
	filter := bloom.NewWithEstimates(bloomExpectedWords, bloomFalsePositive)
	index := make([]*ladder.Tree[string], maxWordLength)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		out := opts.Progress
		if out == nil {
			out = os.Stderr
		}
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("📖 Loading dictionary..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		if bar != nil {
			bar.Add(1)
		}
		if len(word) >= maxWordLength || !isLetters(word) {
			continue
		}

		n := len(word)
		if index[n] == nil {
			index[n] = ladder.NewOrderedTree[string]()
		}
		if filter.TestAndAddString(word) && index[n].Contains(word) {
			continue
		}
		index[n].Insert(word)
		wl.buckets[n] = append(wl.buckets[n], word)
		wl.size++
	}

	if bar != nil {
		bar.Finish()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if wl.size == 0 {
		return nil, errNoWords
	}

	return wl, nil
}

func isLetters(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return word != ""
}

// Bucket returns the words of length n. The slice is shared; do not modify it.
func (wl *WordList) Bucket(n int) []string {
	if n <= 0 || n >= len(wl.buckets) {
		return nil
	}
	return wl.buckets[n]
}

// Lengths lists the word lengths that have at least one word, ascending.
func (wl *WordList) Lengths() []int {
	var lengths []int
	for n, bucket := range wl.buckets {
		if len(bucket) > 0 {
			lengths = append(lengths, n)
		}
	}
	return lengths
}

// Size is the number of distinct words loaded.
func (wl *WordList) Size() int {
	return wl.size
}

func (wl *WordList) MaxWordLength() int {
	return wl.maxWordLength
}

// RandomPair picks two different words of the given length. A length of 0
// picks a random length that has at least two words.
func (wl *WordList) RandomPair(length int, rng *rand.Rand) (string, string, error) {
	if length == 0 {
		var candidates []int
		for _, n := range wl.Lengths() {
			if len(wl.buckets[n]) >= 2 {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			return "", "", errNoWords
		}
		length = candidates[rng.Intn(len(candidates))]
	}

	bucket := wl.Bucket(length)
	if len(bucket) < 2 {
		return "", "", fmt.Errorf("need at least two words of length %d, have %d", length, len(bucket))
	}

	i := rng.Intn(len(bucket))
	j := rng.Intn(len(bucket) - 1)
	if j >= i {
		j++
	}
	return bucket[i], bucket[j], nil
}
