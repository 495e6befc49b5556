// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "strings"

// MaxCodeBits is the longest code that DeriveCodes can represent.
// Trees built from inputs whose length fits the 32-bit size field never
// exceed this, since a depth of 64 requires a total weight beyond 2^32.
const MaxCodeBits = 64

// Code is the bit-string assigned to a symbol. The first bit of the code is
// stored in the most-significant position of the lower Len bits of Val.
type Code struct {
	Val uint64 // Value of the code (must be in [0..1<<Len])
	Len uint8  // Bit length of the code
}

// ParseCode parses a code written as a string of '0' and '1' characters.
// It panics on any other character or if s is longer than MaxCodeBits.
func ParseCode(s string) (c Code) {
	if len(s) > MaxCodeBits {
		panic(ErrCodeOverflow)
	}
	for _, r := range s {
		switch r {
		case '0':
			c.Val <<= 1
		case '1':
			c.Val = c.Val<<1 | 1
		default:
			panic("huffman: invalid code character")
		}
	}
	c.Len = uint8(len(s))
	return c
}

// String renders the code as a string of '0' and '1' characters.
func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(c.Val>>uint(i)&1))
	}
	return sb.String()
}

// Codes maps each symbol to its code.
type Codes map[byte]Code

// DeriveCodes walks the tree and records the path to each leaf, appending a 0
// bit for every left branch and a 1 bit for every right branch. A tree that is
// a bare leaf assigns its symbol the empty code.
func DeriveCodes(root *Node) (codes Codes, err error) {
	defer errRecover(&err)
	codes = make(Codes)
	var walk func(*Node, Code)
	walk = func(n *Node, c Code) {
		if n.IsLeaf() {
			codes[n.Sym] = c
			return
		}
		if c.Len == MaxCodeBits {
			panic(ErrCodeOverflow)
		}
		walk(n.Left, Code{Val: c.Val << 1, Len: c.Len + 1})
		walk(n.Right, Code{Val: c.Val<<1 | 1, Len: c.Len + 1})
	}
	walk(root, Code{})
	return codes, nil
}

// Inverse returns the mapping from each code back to its symbol.
func (cs Codes) Inverse() map[Code]byte {
	m := make(map[Code]byte, len(cs))
	for s, c := range cs {
		m[c] = s
	}
	return m
}

// IsPrefixFree reports whether no code in cs is a prefix of another.
func (cs Codes) IsPrefixFree() bool {
	list := make([]Code, 0, len(cs))
	for _, c := range cs {
		list = append(list, c)
	}
	for i, a := range list {
		for j, b := range list {
			if i == j || a.Len > b.Len {
				continue
			}
			if b.Val>>(b.Len-a.Len) == a.Val {
				return false
			}
		}
	}
	return true
}
