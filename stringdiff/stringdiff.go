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

// Package stringdiff provides line-oriented wrappers around [mergekit.dev/merge3]'s sequence diff
// and three-way merge: split on a separator, run the core algorithm, and join the result back.
package stringdiff

import (
	"strings"

	"mergekit.dev/merge3"
)

const defaultSep = "\n"

// ConflictRegion is a [merge3.ConflictRegion] with its three sides joined back into strings.
//
// StartLine is the inner start index, counted in lines (separator-delimited segments) of the
// partial output, not bytes.
type ConflictRegion struct {
	Base, Ours, Theirs string
	StartLine          int
}

// MergeResult is a [merge3.MergeResult] with its sequences joined back into strings.
type MergeResult struct {
	Sequence     string
	Partial      string
	Conflicts    []ConflictRegion
	HasConflicts bool
}

// Lines splits original and modified on "\n", diffs the resulting lines, and returns the edit
// script. The split preserves trailing empty segments, so a trailing separator yields a trailing
// empty line.
func Lines(original, modified string) []merge3.Change[string] {
	return LinesFunc(original, modified, defaultSep, func(a, b string) bool { return a == b })
}

// LinesFunc is like [Lines] but splits on sep and compares lines with eq.
func LinesFunc(original, modified, sep string, eq func(a, b string) bool) []merge3.Change[string] {
	x := strings.Split(original, sep)
	y := strings.Split(modified, sep)
	return merge3.DiffFunc(x, y, eq)
}

// Merge splits base, ours, and theirs on "\n", three-way merges the resulting lines, and joins the
// outcome back with "\n".
func Merge(base, ours, theirs string) MergeResult {
	return MergeFunc(base, ours, theirs, defaultSep, func(a, b string) bool { return a == b })
}

// MergeFunc is like [Merge] but splits on sep, compares lines with eq, and joins with sep.
func MergeFunc(base, ours, theirs, sep string, eq func(a, b string) bool) MergeResult {
	res := merge3.ThreeWayFunc(
		strings.Split(base, sep),
		strings.Split(ours, sep),
		strings.Split(theirs, sep),
		eq,
	)
	if !res.HasConflicts {
		return MergeResult{Sequence: strings.Join(res.Sequence, sep)}
	}

	conflicts := make([]ConflictRegion, len(res.Conflicts))
	for i, c := range res.Conflicts {
		conflicts[i] = ConflictRegion{
			Base:      strings.Join(c.Base, sep),
			Ours:      strings.Join(c.Ours, sep),
			Theirs:    strings.Join(c.Theirs, sep),
			StartLine: c.StartIndex,
		}
	}
	return MergeResult{
		Partial:      strings.Join(res.Partial, sep),
		Conflicts:    conflicts,
		HasConflicts: true,
	}
}
