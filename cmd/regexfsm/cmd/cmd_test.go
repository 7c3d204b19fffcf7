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
	"errors"
	"io/ioutil"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/couchbase/regexfsm"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logLevel, maxStates = "warn", 10000
	dotOut, dotSVG = "-", false
	fileCount, suiteVerbose = false, false
	input = strings.NewReader(stdin)

	var buf bytes.Buffer
	RootCmd.SetOutput(&buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "", "check", "a*4.+hi", "aaaaaa4uhi", "4uhi", "meow")
	if err != nil {
		t.Fatal(err)
	}
	want := "aaaaaa4uhi: true\n4uhi: true\nmeow: false\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCheckCmdStdin(t *testing.T) {
	out, err := run(t, "123a\na\n\n", "check", "[0-9]+a")
	if err != nil {
		t.Fatal(err)
	}
	want := "123a: true\na: false\n: false\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCheckCmdErrors(t *testing.T) {
	_, err := run(t, "", "check")
	if err == nil {
		t.Errorf("expected error without pattern")
	}

	_, err = run(t, "", "check", "[0-9", "1")
	if !errors.Is(err, regexfsm.ErrMalformedCharClass) {
		t.Errorf("expected malformed char class, got %v", err)
	}

	_, err = run(t, "", "--max-states", "2", "check", "abc", "abc")
	if !errors.Is(err, regexfsm.ErrTooManyStates) {
		t.Errorf("expected too many states, got %v", err)
	}
}

func TestDotCmd(t *testing.T) {
	out, err := run(t, "", "dot", "a*b")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph g {\n") || !strings.Contains(out, "0 -> 1 [label=\"ε\"]\n") {
		t.Errorf("unexpected dot output %q", out)
	}

	path := filepath.Join(t.TempDir(), "a.dot")
	out, err = run(t, "", "dot", "--out", path, "a+")
	if err != nil {
		t.Fatal(err)
	}
	if out != "wrote "+path+"\n" {
		t.Errorf("unexpected output %q", out)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("1 -> 1 [label=\"a\"]\n")) {
		t.Errorf("expected self loop in %s", data)
	}
}

func TestFileCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	err := ioutil.WriteFile(path, []byte("abc\nabd\r\n\nabc"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "file", "abc", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "abc: true\nabd: false\n: false\nabc: true\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	out, err = run(t, "", "file", "--count", "abc", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "2 of 4 lines matched\n" {
		t.Errorf("unexpected count output %q", out)
	}

	empty := filepath.Join(dir, "empty.txt")
	err = ioutil.WriteFile(empty, nil, 0600)
	if err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "", "file", "--count", "a*", empty)
	if err != nil {
		t.Fatal(err)
	}
	if out != "0 of 0 lines matched\n" {
		t.Errorf("unexpected count output %q", out)
	}

	_, err = run(t, "", "file", "abc", filepath.Join(dir, "missing.txt"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestSuiteCmd(t *testing.T) {
	out, err := run(t, "", "suite", "../../../suite/testdata/basic.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if out != "52 passed, 0 failed\n" {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "", "suite", "../../../suite/testdata/failing.yaml")
	if err == nil {
		t.Fatalf("expected failing suite to return an error")
	}
	if !strings.Contains(out, "FAIL \"abc\": \"abd\" want true got false\n") {
		t.Errorf("expected failure to be reported in %q", out)
	}
	if !strings.Contains(out, "1 passed, 3 failed\n") {
		t.Errorf("expected summary in %q", out)
	}
}

func TestEachLine(t *testing.T) {
	tests := []struct {
		data string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb", []string{"a", "b"}},
		{"\n\n", []string{"", ""}},
	}
	for _, test := range tests {
		var got []string
		eachLine([]byte(test.data), func(line []byte) {
			got = append(got, string(line))
		})
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("%q: expected %q, got %q", test.data, test.want, got)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("%q: expected %v, got %v", in, want, got)
		}
	}
}
