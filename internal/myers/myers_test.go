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

package myers

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{name: "identical", x: []string{"foo", "bar", "baz"}, y: []string{"foo", "bar", "baz"}, want: "EEE"},
		{name: "empty", x: nil, y: nil, want: ""},
		{name: "x-empty", x: nil, y: []string{"foo", "bar", "baz"}, want: "III"},
		{name: "y-empty", x: []string{"foo", "bar", "baz"}, y: nil, want: "DDD"},
		{name: "ABCABBA_to_CBABAC", x: strings.Split("ABCABBA", ""), y: strings.Split("CBABAC", ""), want: "DDEIEEDEI"},
		{
			name: "single-replacement",
			x:    strings.Split("ABC", ""),
			y:    strings.Split("AXC", ""),
			want: "EDIE",
		},
		{
			name: "multiple-deletions",
			x:    strings.Split("ABCD", ""),
			y:    strings.Split("AD", ""),
			want: "EDDE",
		},
		{
			name: "multiple-insertions",
			x:    strings.Split("AD", ""),
			y:    strings.Split("ABCD", ""),
			want: "EIIE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Diff(tt.x, tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(%v, %v) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
			gotFunc := render(DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b }))
			if diff := cmp.Diff(tt.want, gotFunc); diff != "" {
				t.Errorf("DiffFunc(%v, %v) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

// TestDiff_literalIndices checks the exact change sequence (kind, index, element) for the boundary
// cases called out explicitly as literal scenarios.
func TestDiff_literalIndices(t *testing.T) {
	x := strings.Split("ABC", "")
	y := strings.Split("AXC", "")
	want := []Change[string]{
		{Equal, 0, "A"},
		{Delete, 1, "B"},
		{Insert, 1, "X"},
		{Equal, 2, "C"},
	}
	got := Diff(x, y)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff(ABC, AXC) differs [-want,+got]:\n%s", diff)
	}
}

func render[T any](cs []Change[T]) string {
	var sb strings.Builder
	for _, c := range cs {
		switch c.Kind {
		case Equal:
			sb.WriteByte('E')
		case Delete:
			sb.WriteByte('D')
		case Insert:
			sb.WriteByte('I')
		}
	}
	return sb.String()
}

// applyScript applies an edit script to x and returns the resulting sequence, for checking the
// round-trip invariant: applying Diff(x, y) to x must reproduce y.
func applyScript[T any](x []T, cs []Change[T]) []T {
	var out []T
	for _, c := range cs {
		switch c.Kind {
		case Equal, Insert:
			out = append(out, c.Element)
		case Delete:
			// dropped
		}
	}
	return out
}

func editCount[T any](cs []Change[T]) int {
	n := 0
	for _, c := range cs {
		if c.Kind != Equal {
			n++
		}
	}
	return n
}

func TestDiff_roundTripFuzz(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune("abc")
	for i := 0; i < 500; i++ {
		x := randSeq(rng, alphabet, rng.IntN(12))
		y := randSeq(rng, alphabet, rng.IntN(12))

		cs := Diff(x, y)
		got := applyScript(x, cs)
		if diff := cmp.Diff(y, got); diff != "" {
			t.Fatalf("applying Diff(%q, %q) differs [-want,+got]:\n%s", string(x), string(y), diff)
		}
	}
}

func TestDiff_determinism(t *testing.T) {
	x := strings.Split("ABCABBA", "")
	y := strings.Split("CBABAC", "")
	first := Diff(x, y)
	for i := 0; i < 10; i++ {
		again := Diff(x, y)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("Diff is not deterministic: call %d differs [-first,+again]:\n%s", i, diff)
		}
	}
}

func TestDiff_minimality(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	alphabet := []rune("ab")
	for i := 0; i < 200; i++ {
		x := randSeq(rng, alphabet, rng.IntN(8))
		y := randSeq(rng, alphabet, rng.IntN(8))

		got := editCount(Diff(x, y))
		want := bruteForceSES(x, y)
		if got != want {
			t.Fatalf("edit count for Diff(%q, %q) = %d, want shortest edit script length %d", string(x), string(y), got, want)
		}
	}
}

func randSeq(rng *rand.Rand, alphabet []rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return out
}

// bruteForceSES computes the shortest-edit-script distance via textbook dynamic programming
// (Levenshtein distance restricted to insert/delete, i.e. indel distance), used as an
// independent oracle for TestDiff_minimality.
func bruteForceSES(x, y []rune) int {
	n, m := len(x), len(y)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if x[i-1] == y[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = 1 + min(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp[n][m]
}

func FuzzDiff_roundTrip(f *testing.F) {
	f.Add("ABCABBA", "CBABAC")
	f.Add("", "")
	f.Add("foo", "")
	f.Fuzz(func(t *testing.T, xs, ys string) {
		x := []rune(xs)
		y := []rune(ys)
		cs := Diff(x, y)
		got := applyScript(x, cs)
		if diff := cmp.Diff(y, got); diff != "" {
			t.Fatalf("applying Diff(%q, %q) differs [-want,+got]:\n%s", xs, ys, diff)
		}
	})
}

func ExampleDiffFunc() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	for _, c := range DiffFunc(x, y, func(a, b rune) bool { return a == b }) {
		switch c.Kind {
		case Equal:
			fmt.Printf("%c", c.Element)
		case Delete:
			fmt.Printf("-%c", c.Element)
		case Insert:
			fmt.Printf("+%c", c.Element)
		}
	}
	// Output:
	// Hello, -W-o-r-l-d+世+界
}
