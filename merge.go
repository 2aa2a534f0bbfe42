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

package merge3

import "mergekit.dev/merge3/internal/mergeengine"

// ConflictRegion describes a span of base that ours and theirs both touched in incompatible ways.
//
// StartIndex is the position in [MergeResult.Partial] at which the conflicting region begins; the
// conflicting content itself is never appended to Partial, so resolving a conflict means inserting
// a chosen resolution at that index.
type ConflictRegion[T any] = mergeengine.ConflictRegion[T]

// MergeResult is the outcome of a three-way merge.
//
// If HasConflicts is false, Sequence holds the merged result and Partial/Conflicts are nil. If
// HasConflicts is true, Sequence is nil, Partial holds everything the merge could reconcile with
// conflicting spans omitted, and Conflicts holds the regions that need manual resolution, ordered by
// StartIndex.
type MergeResult[T any] = mergeengine.MergeResult[T]

// ThreeWay merges ours and theirs, two sequences that each independently diverged from base.
//
// ThreeWay is total: it never fails and always terminates on finite inputs. It recognizes base
// unchanged on either side and both sides converging on an identical result without invoking the
// diff algorithm at all; otherwise it diffs base against each side and walks the two edit scripts in
// lockstep, reporting a conflict wherever they touch overlapping spans of base in different ways.
func ThreeWay[T comparable](base, ours, theirs []T) MergeResult[T] {
	return mergeengine.ThreeWay(base, ours, theirs, func(a, b T) bool { return a == b })
}

// ThreeWayFunc is like [ThreeWay] but uses eq to compare elements.
func ThreeWayFunc[T any](base, ours, theirs []T, eq func(a, b T) bool) MergeResult[T] {
	return mergeengine.ThreeWay(base, ours, theirs, eq)
}
