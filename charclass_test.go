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
	"testing"
)

func TestCharClassString(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"[x]", "[x]"},
		{"[ab]", "[ab]"},
		{"[abc]", "[a-c]"},
		{"[ba]", "[ab]"},
		{"[a-cb]", "[a-c]"},
		{"[a-cx-z]", "[a-cx-z]"},
		{"[^a-m]", "[^a-m]"},
		{"[0-9A-Fa-f]", "[0-9A-Fa-f]"},
		{"[^^]", "[^^]"},
		{"[^a]", "[^a]"},
		{"[a^]", "[a^]"},
		{"[acegi]", "[acegi]"},
	}

	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			a, err := Compile(test.pattern)
			if err != nil {
				t.Fatalf("error compiling: %v", err)
			}
			class := a.State(1).Class()
			if got := class.String(); got != test.want {
				t.Errorf("expected %s, got %s", test.want, got)
			}
		})
	}
}

func TestCharClassContains(t *testing.T) {
	c := newCharClass(false)
	c.addRange('a', 'c')
	c.addRange(maxASCII, maxASCII)
	for _, b := range []byte{'a', 'b', 'c', maxASCII} {
		if !c.Contains(b) {
			t.Errorf("expected %q to be contained", b)
		}
	}
	for _, b := range []byte{'d', 0, 0x80, 0xff} {
		if c.Contains(b) {
			t.Errorf("expected %q not to be contained", b)
		}
	}

	n := newCharClass(true)
	n.addRange('a', 'c')
	for _, b := range []byte{'d', 0, maxASCII} {
		if !n.Contains(b) {
			t.Errorf("expected %q to be contained in negated class", b)
		}
	}
	for _, b := range []byte{'a', 0x80, 0xff} {
		if n.Contains(b) {
			t.Errorf("expected %q not to be contained in negated class", b)
		}
	}
}
