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

// ConflictRegion describes a span of base that ours and theirs both touched in incompatible ways.
//
// StartIndex is the position in the partial result (see [MergeResult]) at which the conflicting
// region would begin; the conflicting content itself is never appended to Partial.
type ConflictRegion[T any] struct {
	Base       []T
	Ours       []T
	Theirs     []T
	StartIndex int
}

// MergeResult is the outcome of a three-way merge.
//
// If HasConflicts is false, Sequence holds the merged result and Partial/Conflicts are nil. If
// HasConflicts is true, Sequence is nil, Partial holds everything the walk could reconcile with
// conflicting spans omitted, and Conflicts holds the regions that need manual resolution, ordered by
// StartIndex.
type MergeResult[T any] struct {
	Sequence     []T
	Partial      []T
	Conflicts    []ConflictRegion[T]
	HasConflicts bool
}

// walk merges ours and theirs, each expressed as an ordered list of edit ranges against base, by
// advancing two cursors in lockstep over base.
func walk[T any](base []T, ours, theirs []EditRange[T], eq func(a, b T) bool) MergeResult[T] {
	var result []T
	var conflicts []ConflictRegion[T]
	oi, ti := 0, 0
	basePos := 0

	for oi < len(ours) || ti < len(theirs) || basePos < len(base) {
		var o, t *EditRange[T]
		if oi < len(ours) {
			o = &ours[oi]
		}
		if ti < len(theirs) {
			t = &theirs[ti]
		}

		switch {
		case o != nil && t != nil:
			if o.BaseStart < basePos {
				oi++
				continue
			}
			if t.BaseStart < basePos {
				ti++
				continue
			}

			upto := min(o.BaseStart, t.BaseStart)
			result = append(result, base[basePos:upto]...)
			basePos = upto

			oEnd := o.BaseStart + o.BaseCount
			tEnd := t.BaseStart + t.BaseCount
			overlap := o.BaseStart < tEnd && t.BaseStart < oEnd
			if !overlap && o.BaseStart == t.BaseStart && o.BaseCount == 0 && t.BaseCount == 0 {
				// Two pure insertions at the same base position: the general half-open interval
				// test never flags zero-width ranges as overlapping, but competing insertions at
				// the same point are exactly the case a conflict exists for.
				overlap = true
			}

			if overlap {
				if o.BaseStart == t.BaseStart && o.BaseCount == t.BaseCount && replacementsEqual(o.Replacement, t.Replacement, eq) {
					result = append(result, o.Replacement...)
				} else {
					regionStart := min(o.BaseStart, t.BaseStart)
					regionEnd := min(max(oEnd, tEnd), len(base))
					conflicts = append(conflicts, ConflictRegion[T]{
						Base:       base[regionStart:regionEnd],
						Ours:       o.Replacement,
						Theirs:     t.Replacement,
						StartIndex: len(result),
					})
				}
				basePos = max(oEnd, tEnd)
				oi++
				ti++
				continue
			}

			if o.BaseStart < t.BaseStart {
				result = append(result, o.Replacement...)
				basePos = oEnd
				oi++
			} else {
				result = append(result, t.Replacement...)
				basePos = tEnd
				ti++
			}

		case o != nil:
			if o.BaseStart < basePos {
				oi++
				continue
			}
			result = append(result, base[basePos:o.BaseStart]...)
			result = append(result, o.Replacement...)
			basePos = o.BaseStart + o.BaseCount
			oi++

		case t != nil:
			if t.BaseStart < basePos {
				ti++
				continue
			}
			result = append(result, base[basePos:t.BaseStart]...)
			result = append(result, t.Replacement...)
			basePos = t.BaseStart + t.BaseCount
			ti++

		default:
			result = append(result, base[basePos:]...)
			basePos = len(base)
		}
	}

	if len(conflicts) == 0 {
		return MergeResult[T]{Sequence: result}
	}
	return MergeResult[T]{Partial: result, Conflicts: conflicts, HasConflicts: true}
}

func replacementsEqual[T any](a, b []T, eq func(a, b T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
