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

// EditRange is a contiguous slice of base indices [BaseStart, BaseStart+BaseCount) that is replaced
// by Replacement. Pure insertions have BaseCount == 0; pure deletions have an empty Replacement.
type EditRange[T any] struct {
	BaseStart   int
	BaseCount   int
	Replacement []T
}

// buildRanges groups an edit script (as produced by diffing base against one of the two divergent
// sides) into an ordered, non-overlapping list of edit ranges anchored in base indices.
//
// A maximal contiguous run of Delete and Insert atoms, uninterrupted by an Equal, is fused into a
// single range: the deletes fix the base slice being replaced and the inserts fix the replacement.
// A run of only inserts becomes a zero-width range anchored at the current base position.
func buildRanges[T any](cs []myers.Change[T]) []EditRange[T] {
	var ranges []EditRange[T]
	basePos := 0

	i := 0
	for i < len(cs) {
		if cs[i].Kind == myers.Equal {
			basePos = cs[i].Index + 1
			i++
			continue
		}

		var deleteIndices []int
		var insertElements []T
		for i < len(cs) && cs[i].Kind != myers.Equal {
			switch cs[i].Kind {
			case myers.Delete:
				deleteIndices = append(deleteIndices, cs[i].Index)
			case myers.Insert:
				insertElements = append(insertElements, cs[i].Element)
			}
			i++
		}

		baseStart := basePos
		if len(deleteIndices) > 0 {
			baseStart = deleteIndices[0]
		}
		ranges = append(ranges, EditRange[T]{
			BaseStart:   baseStart,
			BaseCount:   len(deleteIndices),
			Replacement: insertElements,
		})
		if len(deleteIndices) > 0 {
			basePos = deleteIndices[len(deleteIndices)-1] + 1
		}
	}
	return ranges
}
