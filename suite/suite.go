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


// Package suite runs collections of pattern checks described in YAML
// files, such as:
//
//	cases:
//	- pattern: "a*4.+hi"
//	  accept: ["aaaaaa4uhi", "4uhi"]
//	  reject: ["meow"]
//	- pattern: "[z-a]"
//	  error: true
package suite

import (
	"fmt"
	"io/ioutil"

	"github.com/couchbase/regexfsm"
	"sigs.k8s.io/yaml"
)

// Suite is a list of cases, in file order.
type Suite struct {
	Cases []Case `json:"cases"`
}

// Case describes one pattern, the inputs it must accept and reject, or
// that it must fail to compile.
type Case struct {
	Name    string   `json:"name,omitempty"`
	Pattern string   `json:"pattern"`
	Accept  []string `json:"accept,omitempty"`
	Reject  []string `json:"reject,omitempty"`
	Error   bool     `json:"error,omitempty"`
}

func (c *Case) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%q", c.Pattern)
}

// Parse decodes a suite from YAML.  Unknown fields are rejected.
func Parse(data []byte) (*Suite, error) {
	var rv Suite
	err := yaml.UnmarshalStrict(data, &rv)
	if err != nil {
		return nil, fmt.Errorf("error parsing suite: %v", err)
	}
	for i := range rv.Cases {
		c := &rv.Cases[i]
		if c.Error && (len(c.Accept) > 0 || len(c.Reject) > 0) {
			return nil, fmt.Errorf("case %d (%s): inputs listed for a pattern expected not to compile", i, c)
		}
	}
	return &rv, nil
}

// Load reads and parses the suite file at path.
func Load(path string) (*Suite, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Result is the outcome of compiling a case's pattern, or of checking
// one input against it.
type Result struct {
	Case    string
	Pattern string
	Input   string
	// Compile is set when the result is about compiling the pattern
	// rather than checking Input.
	Compile bool
	Want    bool
	Got     bool
	Err     error
}

// Passed returns true if the outcome was the expected one.
func (r *Result) Passed() bool {
	return r.Want == r.Got
}

func (r *Result) String() string {
	status := "ok"
	if !r.Passed() {
		status = "FAIL"
	}
	if r.Compile {
		if r.Err != nil {
			return fmt.Sprintf("%s %s: compile: %v", status, r.Case, r.Err)
		}
		return fmt.Sprintf("%s %s: compiled, want error", status, r.Case)
	}
	return fmt.Sprintf("%s %s: %q want %t got %t", status, r.Case, r.Input, r.Want, r.Got)
}

// Report collects the results of a run.
type Report struct {
	Results []Result
	Failed  int
}

// Passed returns true if every result passed.
func (r *Report) Passed() bool {
	return r.Failed == 0
}

// Failures returns the results that did not pass, in run order.
func (r *Report) Failures() []Result {
	var rv []Result
	for _, res := range r.Results {
		if !res.Passed() {
			rv = append(rv, res)
		}
	}
	return rv
}

func (r *Report) add(res Result) {
	if !res.Passed() {
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Run compiles every case with the provided options and checks its
// inputs.  A compile result is only reported when it is unexpected, or
// when the case expects an error.
func (s *Suite) Run(opts *regexfsm.CompileOpts) *Report {
	rv := &Report{}
	for i := range s.Cases {
		c := &s.Cases[i]
		a, err := regexfsm.CompileWithOpts(c.Pattern, opts)
		if err != nil || c.Error {
			rv.add(Result{
				Case:    c.String(),
				Pattern: c.Pattern,
				Compile: true,
				Want:    !c.Error,
				Got:     err == nil,
				Err:     err,
			})
			continue
		}
		for _, in := range c.Accept {
			rv.add(check(c, a, in, true))
		}
		for _, in := range c.Reject {
			rv.add(check(c, a, in, false))
		}
	}
	return rv
}

func check(c *Case, a *regexfsm.Automaton, input string, want bool) Result {
	return Result{
		Case:    c.String(),
		Pattern: c.Pattern,
		Input:   input,
		Want:    want,
		Got:     a.Check(input),
	}
}
