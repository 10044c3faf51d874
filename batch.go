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
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-shellwords"
)

// Pair is one start/end request read from a batch file.
type Pair struct {
	Line  int
	Start string
	End   string
}

// ParsePairs reads one "start end" pair per line. Blank lines and lines
// starting with '#' are skipped; words may be quoted. Malformed lines are
// collected into the returned error and the remaining pairs still returned.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	var result *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := shellwords.Parse(line)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		if len(fields) != 2 {
			result = multierror.Append(result, fmt.Errorf("line %d: want 2 words, got %d", lineNo, len(fields)))
			continue
		}
		pairs = append(pairs, Pair{Line: lineNo, Start: fields[0], End: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	return pairs, result.ErrorOrNil()
}

// RunBatch plays every pair, emitting each report. Pairs rejected at the
// boundary are aggregated into the returned error; an exhausted search is a
// normal outcome and is only reported.
func RunBatch(g *Game, pairs []Pair, emit func(*Report)) error {
	var result *multierror.Error
	for _, p := range pairs {
		report := g.Play(p.Start, p.End)
		emit(report)
		if report.Err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", p.Line, report.Err))
		}
	}
	return result.ErrorOrNil()
}
