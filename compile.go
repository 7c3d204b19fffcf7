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

var defaultCompileOpts = &CompileOpts{
	MaxStates: 10000,
}

// CompileOpts controls the compilation of a pattern.
type CompileOpts struct {
	// MaxStates limits the number of states, including the start state,
	// of the compiled automaton.  Zero means no limit.
	MaxStates int
}

// Compile parses pattern and returns the Automaton recognizing it, using
// the default options.
func Compile(pattern string) (*Automaton, error) {
	return CompileWithOpts(pattern, nil)
}

// CompileWithOpts parses pattern and returns the Automaton recognizing it.
// If opts is nil the default options are used.  On error no automaton is
// returned, and the error is a *CompileError wrapping one of the Err
// values of this package.
func CompileWithOpts(pattern string, opts *CompileOpts) (*Automaton, error) {
	if opts == nil {
		opts = defaultCompileOpts
	}
	c := newCompiler(pattern, opts)
	err := c.compile()
	if err != nil {
		return nil, err
	}
	return newAutomaton(pattern, c.states), nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}

type compiler struct {
	pattern string
	opts    *CompileOpts
	states  []*State
	nextID  int
}

func newCompiler(pattern string, opts *CompileOpts) *compiler {
	return &compiler{
		pattern: pattern,
		opts:    opts,
		states:  []*State{newState(0, KindStart)},
		nextID:  1,
	}
}

// compile builds the states in a single pass, chaining each atom to the
// previous one.  An atom followed by '*' is reached from its predecessor
// by an epsilon edge, so it may be skipped entirely.
func (c *compiler) compile() error {
	prev := c.states[0]
	if len(c.pattern) == 0 {
		prev.accept = true
		return nil
	}

	i := 0
	for i < len(c.pattern) {
		if isRepeat(c.pattern[i]) {
			return c.errorf(i, ErrMissingRepeatOperand)
		}
		cur, end, err := c.atom(i)
		if err != nil {
			return err
		}

		var op byte
		if end < len(c.pattern) && isRepeat(c.pattern[end]) {
			op = c.pattern[end]
			end++
		}
		switch op {
		case '*':
			cur.addLoop()
			prev.addTransition(cur, true)
		case '+':
			cur.addLoop()
			prev.addTransition(cur, false)
		default:
			prev.addTransition(cur, false)
		}

		cur.accept = end == len(c.pattern)
		prev = cur
		i = end
	}
	return nil
}

// atom builds the state for the atom starting at i, and returns it along
// with the offset just past the atom
func (c *compiler) atom(i int) (*State, int, error) {
	ch := c.pattern[i]
	switch {
	case ch > maxASCII:
		return nil, 0, c.errorf(i, ErrUnsupportedCharacter)
	case ch == '.':
		s, err := c.newState(i, KindAnyChar)
		return s, i + 1, err
	case ch == '[':
		class, end, err := c.charClass(i)
		if err != nil {
			return nil, 0, err
		}
		s, err := c.newState(i, KindCharClass)
		if err != nil {
			return nil, 0, err
		}
		s.class = class
		return s, end, nil
	}
	s, err := c.newState(i, KindLiteral)
	if err != nil {
		return nil, 0, err
	}
	s.char = ch
	return s, i + 1, nil
}

// charClass parses the class opened at offset open.  Members are single
// characters or inclusive ranges; '[' and '-' are never members.
func (c *compiler) charClass(open int) (*CharClass, int, error) {
	p := c.pattern
	i := open + 1
	negated := false
	if i < len(p) && p[i] == '^' {
		negated = true
		i++
	}
	class := newCharClass(negated)
	empty := true
	for {
		if i >= len(p) {
			return nil, 0, c.errorf(open, ErrMalformedCharClass)
		}
		lo := p[i]
		if lo == ']' {
			if empty {
				return nil, 0, c.errorf(i, ErrMalformedCharClass)
			}
			return class, i + 1, nil
		}
		err := c.checkClassMember(i)
		if err != nil {
			return nil, 0, err
		}
		if i+1 < len(p) && p[i+1] == '-' {
			if i+2 >= len(p) || p[i+2] == ']' {
				return nil, 0, c.errorf(i+1, ErrMalformedCharClass)
			}
			err = c.checkClassMember(i + 2)
			if err != nil {
				return nil, 0, err
			}
			hi := p[i+2]
			if hi < lo {
				return nil, 0, c.errorf(i, ErrMalformedCharClass)
			}
			class.addRange(lo, hi)
			i += 3
		} else {
			class.addRange(lo, lo)
			i++
		}
		empty = false
	}
}

func (c *compiler) checkClassMember(i int) error {
	switch ch := c.pattern[i]; {
	case ch > maxASCII:
		return c.errorf(i, ErrUnsupportedCharacter)
	case ch == '[' || ch == '-':
		return c.errorf(i, ErrMalformedCharClass)
	}
	return nil
}

func (c *compiler) newState(pos int, kind Kind) (*State, error) {
	if c.opts.MaxStates > 0 && len(c.states) >= c.opts.MaxStates {
		return nil, c.errorf(pos, ErrTooManyStates)
	}
	s := newState(c.nextID, kind)
	c.states = append(c.states, s)
	c.nextID++
	return s, nil
}

func (c *compiler) errorf(pos int, err error) error {
	return &CompileError{
		Pattern: c.pattern,
		Pos:     pos,
		Err:     err,
	}
}

func isRepeat(ch byte) bool {
	return ch == '*' || ch == '+'
}
