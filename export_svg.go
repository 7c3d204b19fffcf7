//  Copyright (c) 2017 Couchbase, Inc.
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


package regexfsm

import (
	"io"
	"io/ioutil"
	"os"
	"os/exec"
)

// ExportSVGFile will invoke ExportSVG and send the output to a new file
// at the provided path.
func ExportSVGFile(a *Automaton, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return ExportSVG(a, file)
}

// ExportSVG will take the provided Automaton and generate an SVG
// representation of its graph, using the GraphViz dot command.  The SVG
// will be streamed to the provided writer.
func ExportSVG(a *Automaton, w io.Writer) error {
	pr, pw := io.Pipe()
	defer func() {
		_ = pr.Close()
	}()
	go func() {
		_ = pw.CloseWithError(ExportDot(a, pw))
	}()
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = pr
	cmd.Stdout = w
	cmd.Stderr = ioutil.Discard
	err := cmd.Run()
	if err != nil {
		return err
	}
	return nil
}
