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

// Package mergeengine implements the three-way merge: it groups a Myers edit script into coarser
// edit ranges anchored in base indices, then walks two such groupings (base->ours, base->theirs) in
// lockstep over the base sequence to produce a merged sequence or a set of conflicts.
//
// The range-grouping (ranges.go) and merge-walk (walk.go) algorithms only ever operate on edit
// scripts handed to them by their caller and can be tested against hand-written scripts
// independently of the diff implementation. ThreeWay itself does call into internal/myers: once the
// fast-path identity checks fail, it diffs base against ours and base against theirs to obtain the
// two edit scripts that ranges.go and walk.go then consume.
package mergeengine
