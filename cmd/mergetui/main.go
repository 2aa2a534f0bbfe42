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

// Command mergetui is an interactive terminal tool for stepping through the conflicts produced by a
// three-way merge and picking a resolution for each one.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mergekit.dev/merge3/stringdiff"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: mergetui <base> <ours> <theirs>")
	}

	if debug := os.Getenv("MERGETUI_LOG"); debug != "" {
		f, err := tea.LogToFile(debug, "mergetui")
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", debug, err)
		}
		defer f.Close()
	}

	base, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	ours, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[1], err)
	}
	theirs, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[2], err)
	}

	res := stringdiff.Merge(string(base), string(ours), string(theirs))
	if !res.HasConflicts {
		fmt.Println(res.Sequence)
		return nil
	}

	p := tea.NewProgram(newModel(res))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	m := final.(model)
	if m.accepted {
		fmt.Println(m.resolved())
	}
	return nil
}
