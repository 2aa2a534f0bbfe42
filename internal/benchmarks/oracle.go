// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package benchmarks differentially fuzzes mergekit.dev/merge3 against an independent,
// third-party diff implementation. It lives in a separate module so that comparison-only
// dependencies never leak into the main module's dependency graph.
package benchmarks

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"mergekit.dev/merge3"
)

// oracleEditCount runs x and y through diffmatchpatch's line-level diff and counts the number of
// non-equal line operations it reports, so it can be compared against merge3.Diff's edit count on
// the same inputs.
func oracleEditCount(x, y []string) int {
	dmp := diffmatchpatch.New()
	// Every line, the last one included, is terminated with "\n" so that equal lines hash to the
	// same rune regardless of their position.
	var xb, yb strings.Builder
	for _, l := range x {
		xb.WriteString(l)
		xb.WriteByte('\n')
	}
	for _, l := range y {
		yb.WriteString(l)
		yb.WriteByte('\n')
	}

	rx, ry, lines := dmp.DiffLinesToRunes(xb.String(), yb.String())
	diffs := dmp.DiffMainRunes(rx, ry, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	n := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		n += len(strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n"))
	}
	return n
}

// merge3EditCount counts the non-Equal atoms in merge3's edit script for x and y.
func merge3EditCount(x, y []string) int {
	n := 0
	for _, c := range merge3.Diff(x, y) {
		if c.Kind != merge3.Equal {
			n++
		}
	}
	return n
}

// applyScript reproduces y from x using script, the way a round-trip check would.
func applyScript(x []string, script []merge3.Change[string]) []string {
	var out []string
	for _, c := range script {
		switch c.Kind {
		case merge3.Equal, merge3.Insert:
			out = append(out, c.Element)
		}
	}
	return out
}
