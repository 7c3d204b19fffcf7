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
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/blevesearch/mmap-go"
	"github.com/couchbase/regexfsm"
	"github.com/spf13/cobra"
)

var fileCount bool

var fileCmd = &cobra.Command{
	Use:   "file <pattern> <path>",
	Short: "Checks every line of a file against the pattern.",
	Long: `Checks every line of a file against the pattern.  The file is memory
mapped, so arbitrarily large files can be checked.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and path required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := compile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var lines, matched int
		err = checkFile(a, args[1], func(line []byte, ok bool) {
			lines++
			if ok {
				matched++
			}
			if !fileCount {
				fmt.Fprintf(out, "%s: %t\n", line, ok)
			}
		})
		if err != nil {
			return err
		}
		slog.Debug("checked file", "path", args[1], "lines", lines, "matched", matched)
		if fileCount {
			fmt.Fprintf(out, "%d of %d lines matched\n", matched, lines)
		}
		return nil
	},
}

// checkFile maps the file at path read-only, and calls fn with the result
// of checking each of its lines
func checkFile(a *regexfsm.Automaton, path string, fn func(line []byte, ok bool)) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	finfo, err := f.Stat()
	if err != nil {
		return err
	}
	// empty files cannot be mapped
	if finfo.Size() == 0 {
		return nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := data.Unmap(); err == nil && uerr != nil {
			err = uerr
		}
	}()

	eachLine(data, func(line []byte) {
		fn(line, a.Check(string(line)))
	})
	return nil
}

// eachLine calls fn for each line of data, without its line ending.  A
// final line ending does not start another line.
func eachLine(data []byte, fn func(line []byte)) {
	for len(data) > 0 {
		var line []byte
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			line, data = data, nil
		} else {
			line, data = data[:i], data[i+1:]
		}
		fn(bytes.TrimSuffix(line, []byte{'\r'}))
	}
}

func init() {
	RootCmd.AddCommand(fileCmd)
	fileCmd.Flags().BoolVar(&fileCount, "count", false, "only print the number of matching lines")
}
