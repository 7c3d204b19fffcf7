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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ExportDot will export the states and edges of the provided Automaton
// into the GraphViz (dot) file format.  Accepting states are drawn as
// double circles, and epsilon edges are labelled with ε.
func ExportDot(a *Automaton, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	err = exportStateDot(a, a.Start(), bw, map[int]struct{}{})
	if err != nil {
		return err
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func exportStateDot(a *Automaton, s *State, bw *bufio.Writer, seen map[int]struct{}) error {
	if _, already := seen[s.ID()]; already {
		return nil
	}
	seen[s.ID()] = struct{}{}

	var buf bytes.Buffer
	_, _ = buf.WriteString(fmt.Sprintf("%d [label=\"%s\"]\n", s.ID(), dotEscaper.Replace(s.String())))
	if s.IsAccept() {
		_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", s.ID()))
	}
	next := s.Transitions()
	for _, id := range next {
		_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%s\"]\n", s.ID(), id, dotEscaper.Replace(edgeLabel(a.State(id)))))
	}
	epsilon := s.EpsilonTransitions()
	for _, id := range epsilon {
		_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"ε\"]\n", s.ID(), id))
	}
	_, _ = buf.WriteString("\n\n")

	_, err := bw.Write(buf.Bytes())
	if err != nil {
		return err
	}

	for _, id := range append(next, epsilon...) {
		err = exportStateDot(a, a.State(id), bw, seen)
		if err != nil {
			return err
		}
	}
	return nil
}

// edgeLabel describes the input consumed when entering s
func edgeLabel(s *State) string {
	switch s.Kind() {
	case KindLiteral:
		return string(s.Char())
	case KindAnyChar:
		return "."
	case KindCharClass:
		return s.Class().String()
	}
	return ""
}
