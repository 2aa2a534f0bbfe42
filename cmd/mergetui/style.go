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

import "github.com/charmbracelet/lipgloss"

var (
	colorOurs     = lipgloss.Color("#71A6D2")
	colorTheirs   = lipgloss.Color("#a3be8c")
	colorBase     = lipgloss.Color("#D8DEE9")
	colorResolved = lipgloss.Color("#4484B4")
	colorMuted    = lipgloss.Color("#6b7280")

	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	oursStyle     = lipgloss.NewStyle().Foreground(colorOurs)
	theirsStyle   = lipgloss.NewStyle().Foreground(colorTheirs)
	baseStyle     = lipgloss.NewStyle().Foreground(colorBase)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	resolvedStyle = lipgloss.NewStyle().Foreground(colorResolved).Bold(true)

	selectedOursStyle   = oursStyle.Bold(true).Underline(true)
	selectedTheirsStyle = theirsStyle.Bold(true).Underline(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)
