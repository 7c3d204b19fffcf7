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
	"bufio"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern> [input...]",
	Short: "Checks whether the pattern matches each input.",
	Long: `Checks whether the pattern matches each of the inputs, as a whole.
If no inputs are given they are read from stdin, one per line.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("pattern is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := compile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) > 1 {
			for _, in := range args[1:] {
				fmt.Fprintf(out, "%s: %t\n", in, a.Check(in))
			}
			return nil
		}

		n := 0
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			in := scanner.Text()
			fmt.Fprintf(out, "%s: %t\n", in, a.Check(in))
			n++
		}
		slog.Debug("checked stdin", "pattern", args[0], "lines", n)
		return scanner.Err()
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
