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
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mergekit.dev/merge3/stringdiff"
)

// resolution records which side the user picked for a conflict, if any.
type resolution int

const (
	unresolved resolution = iota
	useBase
	useOurs
	useTheirs
)

// model walks a [stringdiff.MergeResult] that has conflicts, letting the user pick a side for each
// one, then renders the fully resolved text.
type model struct {
	result      stringdiff.MergeResult
	resolutions []resolution
	cursor      int
	quitting    bool
	accepted    bool
}

func newModel(result stringdiff.MergeResult) model {
	return model{
		result:      result,
		resolutions: make([]resolution, len(result.Conflicts)),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "j", "down", "n":
		if m.cursor < len(m.result.Conflicts)-1 {
			m.cursor++
		}
	case "k", "up", "p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "o":
		m.resolutions[m.cursor] = useOurs
		m.advance()
	case "t":
		m.resolutions[m.cursor] = useTheirs
		m.advance()
	case "b":
		m.resolutions[m.cursor] = useBase
		m.advance()
	case "enter":
		if m.allResolved() {
			m.quitting = true
			m.accepted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) advance() {
	if m.cursor < len(m.resolutions)-1 {
		m.cursor++
	}
}

func (m model) allResolved() bool {
	for _, r := range m.resolutions {
		if r == unresolved {
			return false
		}
	}
	return true
}

// resolved reassembles the merged text, splicing each conflict's chosen side in at its StartLine.
func (m model) resolved() string {
	if !m.result.HasConflicts {
		return m.result.Sequence
	}

	lines := strings.Split(m.result.Partial, "\n")
	var b strings.Builder
	prev := 0
	for i, c := range m.result.Conflicts {
		if c.StartLine > prev {
			b.WriteString(strings.Join(lines[prev:c.StartLine], "\n"))
			b.WriteByte('\n')
		}
		switch m.resolutions[i] {
		case useOurs:
			if c.Ours != "" {
				b.WriteString(c.Ours)
				b.WriteByte('\n')
			}
		case useTheirs:
			if c.Theirs != "" {
				b.WriteString(c.Theirs)
				b.WriteByte('\n')
			}
		case useBase:
			if c.Base != "" {
				b.WriteString(c.Base)
				b.WriteByte('\n')
			}
		}
		prev = c.StartLine
	}
	if prev < len(lines) {
		b.WriteString(strings.Join(lines[prev:], "\n"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.result.HasConflicts {
		return headerStyle.Render("no conflicts") + "\n" + m.result.Sequence + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("conflict %d/%d", m.cursor+1, len(m.result.Conflicts))))
	b.WriteByte('\n')

	c := m.result.Conflicts[m.cursor]
	b.WriteString(boxStyle.Render(m.renderSide("ours", c.Ours, m.resolutions[m.cursor] == useOurs, oursStyle, selectedOursStyle)))
	b.WriteByte('\n')
	b.WriteString(boxStyle.Render(baseStyle.Render("base\n" + c.Base)))
	b.WriteByte('\n')
	b.WriteString(boxStyle.Render(m.renderSide("theirs", c.Theirs, m.resolutions[m.cursor] == useTheirs, theirsStyle, selectedTheirsStyle)))
	b.WriteByte('\n')

	b.WriteString(mutedStyle.Render(m.statusLine()))
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render("o: ours  t: theirs  b: base  n/p: next/prev  enter: accept  q: quit"))
	return b.String()
}

func (m model) renderSide(label, text string, selected bool, plain, highlighted lipgloss.Style) string {
	style := plain
	if selected {
		style = highlighted
	}
	return style.Render(label + "\n" + text)
}

func (m model) statusLine() string {
	resolved := 0
	for _, r := range m.resolutions {
		if r != unresolved {
			resolved++
		}
	}
	if resolved == len(m.resolutions) {
		return resolvedStyle.Render(fmt.Sprintf("all %d conflicts resolved, press enter to accept", resolved))
	}
	return fmt.Sprintf("%d/%d conflicts resolved", resolved, len(m.resolutions))
}
