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

package mergeengine

import "mergekit.dev/merge3/internal/myers"

// ThreeWay merges ours and theirs, two sequences that each independently diverged from base, using
// eq to compare elements.
//
// Before doing any diff work, ThreeWay checks the three fast paths any three-way merge should
// short-circuit on: base unchanged on one or both sides, and both sides converging on the same
// result despite both having changed.
func ThreeWay[T any](base, ours, theirs []T, eq func(a, b T) bool) MergeResult[T] {
	baseEqualsOurs := replacementsEqual(base, ours, eq)
	baseEqualsTheirs := replacementsEqual(base, theirs, eq)
	switch {
	case baseEqualsOurs && baseEqualsTheirs:
		return MergeResult[T]{Sequence: base}
	case baseEqualsOurs:
		return MergeResult[T]{Sequence: theirs}
	case baseEqualsTheirs:
		return MergeResult[T]{Sequence: ours}
	case replacementsEqual(ours, theirs, eq):
		return MergeResult[T]{Sequence: ours}
	}

	oursRanges := buildRanges(myers.DiffFunc(base, ours, eq))
	theirsRanges := buildRanges(myers.DiffFunc(base, theirs, eq))
	return walk(base, oursRanges, theirsRanges, eq)
}
