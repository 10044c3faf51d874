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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

var version = "0.1.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Laddergame %s**

Find a word ladder between two words of the same length: each step changes exactly one letter
and every step is a dictionary word. Two searches race on every pair.

Built with Go %s

# 1. Searches
* **A*** orders partial ladders by moves so far plus letters still wrong. Usually quick, not always shortest
* **Brute Force** is a breadth-first search that evicts words from the dictionary as it finds them. Always shortest

# 2. Commands
* laddergame solve cold warm
* laddergame random 5
* laddergame demo
* laddergame batch pairs.txt (one "start end" pair per line)
* laddergame interact
* laddergame settings

# 3. Dictionary
* Any whitespace separated word list, for example /usr/share/dict/words
* Words are lowercased; words with letters outside a-z are skipped
* Words must be shorter than dictionary.max_word_length (15 by default)

# Please be aware
* Copy to clipboard in interactive mode on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
