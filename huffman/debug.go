// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"sort"
	"strings"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func padRight(s string, m int) string {
	if pad := m - len(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// String renders the present symbols with their counts and a histogram bar
// scaled to the most frequent symbol.
func (f *Frequencies) String() string {
	var maxCnt uint64
	for _, c := range f {
		if maxCnt < c {
			maxCnt = c
		}
	}
	maxCntStr := lenBase10(int(maxCnt))

	var ss []string
	ss = append(ss, "{")
	for _, s := range f.Symbols() {
		c := f[s]
		bar := int(32*float64(c)/float64(maxCnt) + 0.5)
		ss = append(ss, fmt.Sprintf("\t%s:  %s |%s",
			padBase10(s, 3),
			padBase10(c, maxCntStr),
			strings.Repeat("#", bar),
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// String renders the codes in ascending symbol order.
func (cs Codes) String() string {
	syms := make([]int, 0, len(cs))
	var maxLen int
	for s, c := range cs {
		syms = append(syms, int(s))
		if maxLen < int(c.Len) {
			maxLen = int(c.Len)
		}
	}
	sort.Ints(syms)

	var ss []string
	ss = append(ss, "{")
	for _, s := range syms {
		c := cs[byte(s)]
		ss = append(ss, fmt.Sprintf("\t%s:  %s  (len: %s),",
			padBase10(s, 3),
			padRight(c.String(), maxLen),
			padBase10(c.Len, lenBase10(maxLen)),
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// String renders the tree as nested parenthesized pairs, where internal nodes
// are prefixed by their number. For example, "#2(#0(3 2) 5)".
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%d", n.Sym)
	}
	return fmt.Sprintf("#%d(%v %v)", n.Num, n.Left, n.Right)
}

func (r Record) String() string {
	return fmt.Sprintf("{%d %d %d %d}", r.LeftKind, r.LeftValue, r.RightKind, r.RightValue)
}
