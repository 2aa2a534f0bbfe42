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

// Package myers implements Myers' O(ND) shortest-edit-script algorithm.
//
// This is the classical trace-storing variant from "An O(ND) Difference Algorithm and Its
// Variations" (Myers, 1986), not the linear-space divide-and-conquer variant: every snapshot of the
// V array is kept so that the edit script can be reconstructed by backtracking from (len(x), len(y))
// to the origin. That costs O((n+m)*d) space instead of O(n+m), but it guarantees the shortest
// possible script every time and a deterministic tie-break between equally short scripts, which
// downstream callers (in particular the three-way merge engine) depend on.
package myers
