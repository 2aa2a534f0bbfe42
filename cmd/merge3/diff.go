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
	"os"

	"github.com/spf13/cobra"

	"mergekit.dev/merge3"
	"mergekit.dev/merge3/stringdiff"
)

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the line-based edit script that transforms a into b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1])
		},
	}
}

func runDiff(cmd *cobra.Command, aPath, bPath string) error {
	a, err := os.ReadFile(aPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", aPath, err)
	}
	b, err := os.ReadFile(bPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", bPath, err)
	}

	for _, c := range stringdiff.Lines(string(a), string(b)) {
		switch c.Kind {
		case merge3.Delete:
			fmt.Fprintf(cmd.OutOrStdout(), "-%s\n", c.Element)
		case merge3.Insert:
			fmt.Fprintf(cmd.OutOrStdout(), "+%s\n", c.Element)
		case merge3.Equal:
			fmt.Fprintf(cmd.OutOrStdout(), " %s\n", c.Element)
		}
	}
	return nil
}
