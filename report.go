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
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/cybrota/laddergame/ladder"
)

const separator = "*********************************************************************"

// failureReason turns a search error into the message shown to the user.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ladder.ErrLengthMismatch):
		return "Words are not the same length"
	case errors.Is(err, ladder.ErrWordTooLong):
		return "The words are too long"
	case errors.Is(err, ladder.ErrEmptyWord):
		return "Words must have at least one letter"
	case errors.Is(err, ladder.ErrWordNotInDictionary):
		return "Words do not both exist in the dictionary"
	case errors.Is(err, ladder.ErrNoLadderFound):
		return "Could not find a word ladder :("
	case errors.Is(err, ladder.ErrSearchLimit):
		return "Gave up: search limit reached"
	default:
		return err.Error()
	}
}

func enqueuesOf(o Outcome) string {
	if o.Result != nil {
		return strconv.Itoa(o.Result.Enqueues)
	}
	return "-"
}

// WriteReport prints one pair's ladders and a side-by-side comparison.
func WriteReport(w io.Writer, r *Report) {
	fmt.Fprintln(w, separator)
	if r.Err != nil {
		fmt.Fprintf(w, "%s%s -> %s: %s%s\n\n", Warning, r.Start, r.End, failureReason(r.Err), Reset)
		return
	}

	fmt.Fprintf(w, "Seeking a solution from %s -> %s Size of List %d\n\n", r.Start, r.End, r.ListSize)

	for _, o := range r.Outcomes {
		fmt.Fprintf(w, "%s Solution:\n", o.Strategy)
		if o.Err != nil {
			fmt.Fprintf(w, "%s%s%s\n", Error, failureReason(o.Err), Reset)
			fmt.Fprintf(w, "%s\n\n", o.Err)
			continue
		}
		fmt.Fprintf(w, "%sWord %s%s Moves %d Ladder [%s]\n", Green, o.Result.Ladder[len(o.Result.Ladder)-1], Reset,
			o.Result.Moves, strings.Join(o.Result.Ladder, " "))
		if o.Result.Moves > 0 {
			fmt.Fprintf(w, "Total enqueues: %d\n", o.Result.Enqueues)
		}
		fmt.Fprintln(w)
	}

	writeComparison(w, r)
}

func writeComparison(w io.Writer, r *Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Strategy", "Moves", "Enqueues", "Elapsed", "Cached", "Ladder"})
	table.SetAutoWrapText(false)

	for _, o := range r.Outcomes {
		row := []string{o.Strategy.String(), "-", enqueuesOf(o), "-", strconv.FormatBool(o.Cached), ""}
		if o.Err != nil {
			row[5] = failureReason(o.Err)
		} else {
			row[1] = strconv.Itoa(o.Result.Moves)
			row[3] = o.Result.Elapsed.Round(time.Microsecond).String()
			row[5] = strings.Join(o.Result.Ladder, " → ")
		}
		table.Append(row)
	}
	table.Render()
	fmt.Fprintln(w)
}

// reportMarkdown renders a report for the interactive view.
func reportMarkdown(r *Report) string {
	var b strings.Builder
	if r.Err != nil {
		fmt.Fprintf(&b, "# %s → %s\n\n**%s**\n", r.Start, r.End, failureReason(r.Err))
		return b.String()
	}

	fmt.Fprintf(&b, "# %s → %s\n\n%d words of length %d in the dictionary.\n\n", r.Start, r.End, r.ListSize, len(r.Start))
	for _, o := range r.Outcomes {
		fmt.Fprintf(&b, "## %s\n\n", o.Strategy)
		if o.Err != nil {
			fmt.Fprintf(&b, "_%s_\n\n", failureReason(o.Err))
			continue
		}
		for i, word := range o.Result.Ladder {
			fmt.Fprintf(&b, "%d. `%s`\n", i+1, word)
		}
		fmt.Fprintf(&b, "\n**%d moves**, %d enqueues, %s", o.Result.Moves, o.Result.Enqueues,
			o.Result.Elapsed.Round(time.Microsecond))
		if o.Cached {
			b.WriteString(" (cached)")
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
