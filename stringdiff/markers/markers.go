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

// Package markers renders a [stringdiff.ConflictRegion] as Git-style diff3 conflict markers
// (<<<<<<< ours / ||||||| base / ======= / >>>>>>> theirs). It is purely decorative: it has no
// influence on merge semantics and does not participate in conflict resolution.
package markers

import (
	"strings"

	"mergekit.dev/merge3/stringdiff"
)

const (
	oursHeader   = "<<<<<<< ours"
	baseHeader   = "||||||| base"
	middle       = "======="
	theirsFooter = ">>>>>>> theirs"
)

// Format renders a single conflict region as a diff3-style marker block.
func Format(c stringdiff.ConflictRegion) string {
	var b strings.Builder
	b.WriteString(oursHeader)
	b.WriteByte('\n')
	writeNonEmpty(&b, c.Ours)
	b.WriteString(baseHeader)
	b.WriteByte('\n')
	writeNonEmpty(&b, c.Base)
	b.WriteString(middle)
	b.WriteByte('\n')
	writeNonEmpty(&b, c.Theirs)
	b.WriteString(theirsFooter)
	return b.String()
}

func writeNonEmpty(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

// Render reassembles the full text of a [stringdiff.MergeResult] with every conflict replaced by
// its marker block, splicing each block in at its StartLine. The result is meant for display, not
// for feeding back into a merge: resolving a conflict means picking one of the three sides out of
// the rendered block, not editing around the markers.
//
// Render assumes res was produced with the default "\n" line separator; callers of
// [stringdiff.MergeFunc] with a custom separator should splice conflicts in themselves.
func Render(res stringdiff.MergeResult) string {
	if !res.HasConflicts {
		return res.Sequence
	}

	lines := strings.Split(res.Partial, "\n")
	var b strings.Builder
	prev := 0
	for _, c := range res.Conflicts {
		if c.StartLine > prev {
			b.WriteString(strings.Join(lines[prev:c.StartLine], "\n"))
			b.WriteByte('\n')
		}
		b.WriteString(Format(c))
		b.WriteByte('\n')
		prev = c.StartLine
	}
	if prev < len(lines) {
		b.WriteString(strings.Join(lines[prev:], "\n"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
