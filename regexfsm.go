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


/*
Package regexfsm compiles a small regular expression language into a
non-deterministic finite automaton with epsilon transitions, and checks
whole strings against it by simulating every run of the automaton at once.

The supported syntax is literal ASCII characters, '.' for any ASCII
character, character classes such as [a-z0-9] and [^abc], and the postfix
repetition operators '*' and '+' applied to the preceding atom.  Atoms are
concatenated implicitly.

	a, err := regexfsm.Compile("a*4.+hi")
	if err != nil {
		return err
	}
	a.Check("aaaaaa4uhi") // true
	a.Check("meow")       // false

A compiled Automaton is immutable and may be shared by any number of
goroutines calling Check.
*/
package regexfsm

import (
	"fmt"
)

// ErrUnsupportedCharacter is returned when the pattern contains a character
// outside of the ASCII range
var ErrUnsupportedCharacter = fmt.Errorf("unsupported character")

// ErrMalformedCharClass is returned when a character class is not terminated,
// is empty, or contains an incomplete or reversed range
var ErrMalformedCharClass = fmt.Errorf("malformed character class")

// ErrMissingRepeatOperand is returned when '*' or '+' does not follow an atom
var ErrMissingRepeatOperand = fmt.Errorf("missing argument to repetition operator")

// ErrTooManyStates is returned when the compiled automaton would contain
// more states than allowed by CompileOpts.MaxStates
var ErrTooManyStates = fmt.Errorf("too many states")

// CompileError describes why a pattern could not be compiled, and where.
type CompileError struct {
	Pattern string
	Pos     int
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexfsm: %v at offset %d in %q", e.Err, e.Pos, e.Pattern)
}

// Unwrap returns the underlying sentinel error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// MatchString compiles pattern and reports whether it matches all of input.
func MatchString(pattern, input string) (bool, error) {
	a, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return a.Check(input), nil
}
