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
	"github.com/willf/bitset"
	"golang.org/x/exp/slices"
)

// Automaton is a compiled pattern.  It owns all of its states, and is
// never modified once Compile returns, so it may be used concurrently.
//
// Besides Check, an Automaton can be driven one input byte at a time:
// a run starts with StartSet, advances with Step and is judged with
// IsMatch.  Sets of states are bitsets of state ids.
type Automaton struct {
	pattern  string
	states   []*State
	closures []*bitset.BitSet
}

func newAutomaton(pattern string, states []*State) *Automaton {
	rv := &Automaton{
		pattern:  pattern,
		states:   states,
		closures: make([]*bitset.BitSet, len(states)),
	}
	for _, s := range states {
		rv.closures[s.id] = rv.epsilonClosure(s.id)
	}
	return rv
}

// epsilonClosure returns the set of states reachable from id using only
// epsilon edges, including id itself
func (a *Automaton) epsilonClosure(id int) *bitset.BitSet {
	visited := bitset.New(uint(len(a.states)))
	visited.Set(uint(id))
	stack := []int{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		eps := a.states[cur].epsilon
		for i, ok := eps.NextSet(0); ok; i, ok = eps.NextSet(i + 1) {
			if !visited.Test(i) {
				visited.Set(i)
				stack = append(stack, int(i))
			}
		}
	}
	return visited
}

// Check returns true if and only if the automaton accepts the whole input.
func (a *Automaton) Check(input string) bool {
	cur := a.closures[0]
	for i := 0; i < len(input); i++ {
		if !a.CanMatch(cur) {
			return false
		}
		cur = a.Step(cur, input[i])
	}
	return a.IsMatch(cur)
}

// Check returns true if and only if a accepts the whole input.
func Check(a *Automaton, input string) bool {
	return a.Check(input)
}

// StartSet returns a new copy of the set of states a run begins in, the
// epsilon closure of the start state.
func (a *Automaton) StartSet() *bitset.BitSet {
	return a.closures[0].Clone()
}

// Step returns the set of states reached from cur by consuming c.  The
// provided set is not modified.
func (a *Automaton) Step(cur *bitset.BitSet, c byte) *bitset.BitSet {
	rv := bitset.New(uint(len(a.states)))
	consumed := bitset.New(uint(len(a.states)))
	for i, ok := cur.NextSet(0); ok && int(i) < len(a.states); i, ok = cur.NextSet(i + 1) {
		next := a.states[i].next
		for t, ok := next.NextSet(0); ok; t, ok = next.NextSet(t + 1) {
			if consumed.Test(t) || !a.states[t].accepts(c) {
				continue
			}
			consumed.Set(t)
			rv.InPlaceUnion(a.closures[t])
		}
	}
	return rv
}

// IsMatch returns true if cur contains an accepting state.
func (a *Automaton) IsMatch(cur *bitset.BitSet) bool {
	for i, ok := cur.NextSet(0); ok && int(i) < len(a.states); i, ok = cur.NextSet(i + 1) {
		if a.states[i].accept {
			return true
		}
	}
	return false
}

// CanMatch returns true if any run is still alive in cur.  Once no run
// is alive, no further input can lead to a match.
func (a *Automaton) CanMatch(cur *bitset.BitSet) bool {
	return cur.Any()
}

// EpsilonClosure returns a copy of the epsilon closure of the state with
// the given id, or nil if there is no such state.
func (a *Automaton) EpsilonClosure(id int) *bitset.BitSet {
	if id < 0 || id >= len(a.closures) {
		return nil
	}
	return a.closures[id].Clone()
}

// Start returns the start state.
func (a *Automaton) Start() *State {
	return a.states[0]
}

// State returns the state with the given id, or nil if there is no such
// state.
func (a *Automaton) State(id int) *State {
	if id < 0 || id >= len(a.states) {
		return nil
	}
	return a.states[id]
}

// Len returns the number of states, including the start state.
func (a *Automaton) Len() int {
	return len(a.states)
}

// Reachable returns every state reachable from the start state by any
// mix of consuming and epsilon edges, ordered by id.
func (a *Automaton) Reachable() []*State {
	seen := bitset.New(uint(len(a.states)))
	seen.Set(0)
	ids := []int{0}
	stack := []int{0}
	for len(stack) > 0 {
		cur := a.states[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		for _, edges := range []*bitset.BitSet{cur.next, cur.epsilon} {
			for i, ok := edges.NextSet(0); ok; i, ok = edges.NextSet(i + 1) {
				if seen.Test(i) {
					continue
				}
				seen.Set(i)
				ids = append(ids, int(i))
				stack = append(stack, int(i))
			}
		}
	}
	slices.Sort(ids)
	rv := make([]*State, len(ids))
	for i, id := range ids {
		rv[i] = a.states[id]
	}
	return rv
}

// String returns the source pattern.
func (a *Automaton) String() string {
	return a.pattern
}
