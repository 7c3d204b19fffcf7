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
	"fmt"

	"github.com/willf/bitset"
)

// Kind identifies which characters a state accepts on entry.
type Kind int

const (
	// KindStart is the entry point of the automaton, it accepts nothing
	KindStart Kind = iota
	// KindLiteral accepts exactly one ASCII character
	KindLiteral
	// KindAnyChar accepts any ASCII character
	KindAnyChar
	// KindCharClass accepts the characters of a CharClass
	KindCharClass
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindLiteral:
		return "Literal"
	case KindAnyChar:
		return "AnyChar"
	case KindCharClass:
		return "CharClass"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is a node of a compiled Automaton.  Edges are stored as sets of
// target state ids, so a State can only be inspected, never modified,
// outside of this package.
type State struct {
	id      int
	kind    Kind
	char    byte
	class   *CharClass
	accept  bool
	next    *bitset.BitSet
	epsilon *bitset.BitSet
}

func newState(id int, kind Kind) *State {
	return &State{
		id:      id,
		kind:    kind,
		next:    bitset.New(0),
		epsilon: bitset.New(0),
	}
}

// accepts reports whether a transition into s may consume c
func (s *State) accepts(c byte) bool {
	switch s.kind {
	case KindStart:
		return false
	case KindLiteral:
		return s.char == c
	case KindAnyChar:
		return c <= maxASCII
	case KindCharClass:
		return s.class.Contains(c)
	}
	return false
}

func (s *State) addLoop() {
	s.next.Set(uint(s.id))
}

func (s *State) addTransition(to *State, epsilon bool) {
	if epsilon {
		s.epsilon.Set(uint(to.id))
	} else {
		s.next.Set(uint(to.id))
	}
}

// ID returns the state id, unique within its Automaton.  The start
// state always has id 0.
func (s *State) ID() int {
	return s.id
}

// Kind returns the kind of the state.
func (s *State) Kind() Kind {
	return s.kind
}

// Char returns the character accepted by a KindLiteral state, and 0 for
// all other kinds.
func (s *State) Char() byte {
	return s.char
}

// Class returns the character class of a KindCharClass state, and nil for
// all other kinds.
func (s *State) Class() *CharClass {
	return s.class
}

// IsAccept returns true if the automaton accepts the input when a run
// ends in this state.
func (s *State) IsAccept() bool {
	return s.accept
}

// Transitions returns the ids of the states reachable by consuming one
// character, in ascending order.
func (s *State) Transitions() []int {
	return setIDs(s.next)
}

// EpsilonTransitions returns the ids of the states reachable without
// consuming input, in ascending order.
func (s *State) EpsilonTransitions() []int {
	return setIDs(s.epsilon)
}

// Label returns a short human readable description of the state.
func (s *State) Label() string {
	switch s.kind {
	case KindStart:
		return "START"
	case KindLiteral:
		return fmt.Sprintf("'%c'", s.char)
	case KindAnyChar:
		return "'.'"
	case KindCharClass:
		return s.class.String()
	}
	return s.kind.String()
}

func (s *State) String() string {
	return fmt.Sprintf("%d: %s", s.id, s.Label())
}

func setIDs(set *bitset.BitSet) []int {
	rv := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		rv = append(rv, int(i))
	}
	return rv
}
