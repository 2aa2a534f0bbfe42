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

package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mergekit.dev/merge3/stringdiff"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_resolveSingleConflict(t *testing.T) {
	res := stringdiff.Merge("A\nB\nC", "A\nX\nC", "A\nY\nC")
	m := newModel(res)

	updated, _ := m.Update(keyMsg('o'))
	m = updated.(model)

	if !m.allResolved() {
		t.Fatal("allResolved() = false after resolving the only conflict")
	}
	if got, want := m.resolved(), "A\nX\nC"; got != want {
		t.Errorf("resolved() = %q, want %q", got, want)
	}
}

func TestModel_resolveWithTheirs(t *testing.T) {
	res := stringdiff.Merge("A\nB\nC", "A\nX\nC", "A\nY\nC")
	m := newModel(res)

	updated, _ := m.Update(keyMsg('t'))
	m = updated.(model)

	if got, want := m.resolved(), "A\nY\nC"; got != want {
		t.Errorf("resolved() = %q, want %q", got, want)
	}
}

func TestModel_acceptQuitsOnlyWhenResolved(t *testing.T) {
	res := stringdiff.Merge("A\nB\nC\nD\nE", "A\nX\nC\nZ\nE", "A\nY\nC\nW\nE")
	m := newModel(res)
	if len(m.result.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(m.result.Conflicts))
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if cmd != nil {
		t.Fatal("enter quit before all conflicts were resolved")
	}

	updated, _ = m.Update(keyMsg('o'))
	m = updated.(model)
	updated, _ = m.Update(keyMsg('t'))
	m = updated.(model)

	if !m.allResolved() {
		t.Fatal("allResolved() = false after resolving both conflicts")
	}

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if cmd == nil {
		t.Fatal("enter did not quit once all conflicts were resolved")
	}
	if !m.accepted {
		t.Fatal("accepted = false after enter on a fully resolved model")
	}
}

func TestModel_navigation(t *testing.T) {
	res := stringdiff.Merge("A\nB\nC\nD\nE", "A\nX\nC\nZ\nE", "A\nY\nC\nW\nE")
	m := newModel(res)

	updated, _ := m.Update(keyMsg('j'))
	m = updated.(model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(keyMsg('j'))
	m = updated.(model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (clamped at last conflict)", m.cursor)
	}

	updated, _ = m.Update(keyMsg('k'))
	m = updated.(model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestModel_noConflicts(t *testing.T) {
	res := stringdiff.Merge("A\nB", "A\nB", "A\nX")
	m := newModel(res)
	if got, want := m.View(), ""; got == want {
		t.Fatal("View() unexpectedly empty for a clean merge")
	}
}
