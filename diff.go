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

import "mergekit.dev/merge3/internal/myers"

// Kind identifies the operation a [Change] represents.
type Kind = myers.Kind

const (
	Equal  = myers.Equal  // x[Index] == y[j] for some j
	Delete = myers.Delete // removal of x[Index]
	Insert = myers.Insert // insertion producing y[Index]
)

// Change is a single atom of an edit script that transforms original into modified.
//
//   - For Equal and Delete, Index is a position in original.
//   - For Insert, Index is a position in modified.
type Change[T any] = myers.Change[T]

// Diff computes the Myers shortest edit script that transforms original into modified.
//
// Diff is total: it returns an empty script iff both inputs are empty, and an all-Equal script iff
// the inputs are equal. Repeated calls on the same inputs return an identical script, including the
// documented delete-before-insert tie-break.
func Diff[T comparable](original, modified []T) []Change[T] {
	return myers.Diff(original, modified)
}

// DiffFunc is like [Diff] but uses eq to compare elements.
func DiffFunc[T any](original, modified []T, eq func(a, b T) bool) []Change[T] {
	return myers.DiffFunc(original, modified, eq)
}
