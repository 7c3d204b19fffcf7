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
	"os"

	"github.com/couchbase/regexfsm"
	"github.com/spf13/cobra"
)

var dotOut string
var dotSVG bool

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Exports the automaton of a pattern as a GraphViz graph.",
	Long: `Exports the automaton of a pattern in the GraphViz dot format, or as SVG
when --svg is given.  Rendering SVG requires the dot command.`,
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

		if dotOut == "" || dotOut == "-" {
			if dotSVG {
				return regexfsm.ExportSVG(a, cmd.OutOrStdout())
			}
			return regexfsm.ExportDot(a, cmd.OutOrStdout())
		}

		if dotSVG {
			err = regexfsm.ExportSVGFile(a, dotOut)
		} else {
			err = exportDotFile(a, dotOut)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dotOut)
		return nil
	},
}

func exportDotFile(a *regexfsm.Automaton, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return regexfsm.ExportDot(a, f)
}

func init() {
	RootCmd.AddCommand(dotCmd)
	dotCmd.Flags().StringVarP(&dotOut, "out", "o", "-", "output path, - for stdout")
	dotCmd.Flags().BoolVar(&dotSVG, "svg", false, "render SVG using the dot command")
}
