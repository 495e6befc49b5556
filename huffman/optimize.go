// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "sort"

// AvgLength reports the average number of bits per symbol needed to encode
// data with the histogram freqs using the given tree. Symbols of the tree
// absent from freqs are weighted zero. It reports 0 if the total weight of the
// leaves is zero.
func AvgLength(root *Node, freqs *Frequencies) float64 {
	var bits, total uint64
	walkLeaves(root, 0, func(n *Node, depth int) {
		bits += uint64(depth) * freqs[n.Sym]
		total += freqs[n.Sym]
	})
	if total == 0 {
		return 0
	}
	return float64(bits) / float64(total)
}

// Improve reassigns the symbols held by the leaves of the tree so that the
// most frequent symbols occupy the shallowest leaves, without changing the
// shape of the tree or the numbers of its internal nodes. The result never
// has a greater AvgLength than the input.
//
// Leaves of equal depth are filled in preorder, and symbols of equal
// frequency are assigned in ascending order.
func Improve(root *Node, freqs *Frequencies) {
	if root.IsLeaf() {
		return
	}

	type slot struct{ depth, order int }
	var slots []slot
	var syms []byte
	walkLeaves(root, 0, func(n *Node, depth int) {
		slots = append(slots, slot{depth, len(slots)})
		syms = append(syms, n.Sym)
	})

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].depth < slots[j].depth
	})
	sort.Slice(syms, func(i, j int) bool {
		fi, fj := freqs[syms[i]], freqs[syms[j]]
		if fi != fj {
			return fi > fj
		}
		return syms[i] < syms[j]
	})

	assign := make([]byte, len(slots))
	for i, s := range slots {
		assign[s.order] = syms[i]
	}
	var next int
	*root = *reshape(root, assign, &next)
}

// reshape returns a copy of the tree where the i-th leaf in preorder holds
// assign[i].
func reshape(n *Node, assign []byte, next *int) *Node {
	if n.IsLeaf() {
		sym := assign[*next]
		*next++
		return NewLeaf(sym)
	}
	left := reshape(n.Left, assign, next)
	right := reshape(n.Right, assign, next)
	return &Node{Left: left, Right: right, Num: n.Num}
}

// walkLeaves calls fn for every leaf in preorder with its depth.
func walkLeaves(n *Node, depth int, fn func(*Node, int)) {
	if n.IsLeaf() {
		fn(n, depth)
		return
	}
	walkLeaves(n.Left, depth+1, fn)
	walkLeaves(n.Right, depth+1, fn)
}
