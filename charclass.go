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
	"strings"

	"github.com/willf/bitset"
)

const maxASCII = 0x7f

// CharClass is a set of ASCII characters, optionally negated.
type CharClass struct {
	set     *bitset.BitSet
	negated bool
}

func newCharClass(negated bool) *CharClass {
	return &CharClass{
		set:     bitset.New(maxASCII + 1),
		negated: negated,
	}
}

// addRange adds the inclusive range [lo, hi], both must be ASCII
func (c *CharClass) addRange(lo, hi byte) {
	for b := uint(lo); b <= uint(hi); b++ {
		c.set.Set(b)
	}
}

// Contains reports whether the class accepts b.  Bytes outside of the
// ASCII range are never accepted, negated or not.
func (c *CharClass) Contains(b byte) bool {
	if b > maxASCII {
		return false
	}
	return c.set.Test(uint(b)) != c.negated
}

// Negated returns true if the class was written with a leading '^'.
func (c *CharClass) Negated() bool {
	return c.negated
}

// Members returns the characters listed in the class, in ascending order,
// without applying negation.
func (c *CharClass) Members() []byte {
	rv := make([]byte, 0, c.set.Count())
	for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
		rv = append(rv, byte(i))
	}
	return rv
}

// String returns the class in bracket syntax, runs of three or more
// consecutive characters are written as ranges.
func (c *CharClass) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if c.negated {
		sb.WriteByte('^')
	}
	members := c.Members()
	// a leading '^' member would read as negation
	caret := !c.negated && len(members) > 1 && members[0] == '^'
	if caret {
		members = members[1:]
	}
	for i := 0; i < len(members); {
		j := i
		for j+1 < len(members) && members[j+1] == members[j]+1 {
			j++
		}
		if j-i >= 2 {
			sb.WriteByte(members[i])
			sb.WriteByte('-')
			sb.WriteByte(members[j])
		} else {
			sb.Write(members[i : j+1])
		}
		i = j + 1
	}
	if caret {
		sb.WriteByte('^')
	}
	sb.WriteByte(']')
	return sb.String()
}
