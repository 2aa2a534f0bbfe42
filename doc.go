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

// Package merge3 provides Myers' shortest-edit-script diffing and a three-way merge built on top
// of it.
//
// The main functions are [Diff], which computes the ordered edit script between two slices, and
// [ThreeWay], which merges two divergent slices against a common ancestor using the same diff
// primitive. Both functions are total: they never fail and always terminate on finite inputs.
//
// Note: for diffing and merging text line by line, see [mergekit.dev/merge3/stringdiff].
//
// [mergekit.dev/merge3/stringdiff]: https://pkg.go.dev/mergekit.dev/merge3/stringdiff
package merge3
