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


//go:build havedot
// +build havedot

package regexfsm

import (
	"io/ioutil"
	"os"
	"testing"
)

func TestExportSVGFile(t *testing.T) {
	a, err := Compile("a*4.+hi")
	if err != nil {
		t.Fatalf("error compiling: %v", err)
	}

	tmpDir, err := ioutil.TempDir("", "regexfsm-svg")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		err = os.RemoveAll(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
	}()

	path := tmpDir + string(os.PathSeparator) + "tmp.svg"

	err = ExportSVGFile(a, path)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	finfo, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}

	if finfo.Size() == 0 {
		t.Fatalf("expected non-zero file size, got 0")
	}
}
