//  Copyright (c) 2018 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cmd

import (
	"fmt"
	"log/slog"

	"github.com/couchbase/regexfsm/suite"
	"github.com/spf13/cobra"
)

var suiteVerbose bool

var suiteCmd = &cobra.Command{
	Use:   "suite <path>",
	Short: "Runs the pattern checks described in a YAML suite file.",
	Long:  `Runs the pattern checks described in a YAML suite file, and fails if any check does not pass.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := suite.Load(args[0])
		if err != nil {
			return err
		}
		report := s.Run(compileOpts())

		out := cmd.OutOrStdout()
		for i := range report.Results {
			res := &report.Results[i]
			if suiteVerbose || !res.Passed() {
				fmt.Fprintln(out, res)
			}
		}
		slog.Debug("ran suite", "path", args[0], "cases", len(s.Cases), "checks", len(report.Results))
		fmt.Fprintf(out, "%d passed, %d failed\n", len(report.Results)-report.Failed, report.Failed)
		if !report.Passed() {
			return fmt.Errorf("%d of %d checks failed", report.Failed, len(report.Results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(suiteCmd)
	suiteCmd.Flags().BoolVarP(&suiteVerbose, "verbose", "v", false, "print every result, not only failures")
}
