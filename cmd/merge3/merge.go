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

	"mergekit.dev/merge3/stringdiff"
	"mergekit.dev/merge3/stringdiff/markers"
)

func mergeCmd() *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "merge <base> <ours> <theirs>",
		Short: "Three-way merge three text files",
		Long: `Merges ours and theirs against their common ancestor base.

On a clean merge, the result is written to stdout (or --out, if given) and
merge3 exits with status 0. If conflicts remain, the partial merge with
diff3-style conflict markers spliced in is written instead and merge3 exits
with status 1, mirroring how "git merge-file" signals conflicts.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args[0], args[1], args[2], out)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "write the result to this file instead of stdout")
	return c
}

func runMerge(cmd *cobra.Command, basePath, oursPath, theirsPath, out string) error {
	base, err := os.ReadFile(basePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", basePath, err)
	}
	ours, err := os.ReadFile(oursPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", oursPath, err)
	}
	theirs, err := os.ReadFile(theirsPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", theirsPath, err)
	}

	res := stringdiff.Merge(string(base), string(ours), string(theirs))

	w := cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if !res.HasConflicts {
		fmt.Fprintln(w, res.Sequence)
		return nil
	}

	fmt.Fprintln(w, markers.Render(res))
	cmd.SilenceUsage = true
	return errConflicts(len(res.Conflicts))
}

type errConflicts int

func (n errConflicts) Error() string {
	if n == 1 {
		return "1 conflict"
	}
	return fmt.Sprintf("%d conflicts", int(n))
}
