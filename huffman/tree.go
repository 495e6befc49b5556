// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"container/heap"
	"sort"
)

// Node is a node in a prefix code tree. A node with no children is a leaf
// holding Sym. Otherwise, it is an internal node with both children set.
// Trees are exclusively owned: no subtree is shared between two parents.
type Node struct {
	Sym   byte  // Symbol of a leaf node
	Left  *Node // Child on the '0' branch
	Right *Node // Child on the '1' branch

	// Num is the postorder number of an internal node.
	// It is only meaningful after Number or one of the decoders ran.
	Num int
}

// NewLeaf returns a leaf node for sym.
func NewLeaf(sym byte) *Node { return &Node{Sym: sym} }

// NewInternal returns an unnumbered internal node with the given children.
func NewInternal(left, right *Node) *Node { return &Node{Left: left, Right: right} }

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Depth reports the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// mergeItem is a weighted subtree in the working collection of Build.
// The seq field orders items of equal weight by insertion.
type mergeItem struct {
	weight uint64
	seq    int
	node   *Node
}

type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(mergeItem)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Build constructs a Huffman tree for the symbols present in freqs.
//
// The two lightest items are repeatedly merged, with the first one extracted
// becoming the left child. Items of equal weight are extracted in insertion
// order, where the initial leaves are inserted in ascending (count, symbol)
// order and each merged item is inserted after every existing item.
//
// If only one symbol is present, it is paired with a synthetic sibling leaf
// (the next symbol value) on the right so that it is assigned the code "0".
// If no symbol is present, ErrEmptyAlphabet is returned.
func Build(freqs *Frequencies) (*Node, error) {
	syms := freqs.Symbols()
	switch len(syms) {
	case 0:
		return nil, ErrEmptyAlphabet
	case 1:
		return NewInternal(NewLeaf(syms[0]), NewLeaf(syms[0]+1)), nil
	}

	sort.SliceStable(syms, func(i, j int) bool {
		return freqs[syms[i]] < freqs[syms[j]]
	})
	h := make(mergeHeap, 0, len(syms))
	for i, s := range syms {
		h = append(h, mergeItem{weight: freqs[s], seq: i, node: NewLeaf(s)})
	}
	heap.Init(&h)

	seq := len(syms)
	for h.Len() > 1 {
		l := heap.Pop(&h).(mergeItem)
		r := heap.Pop(&h).(mergeItem)
		heap.Push(&h, mergeItem{
			weight: l.weight + r.weight,
			seq:    seq,
			node:   NewInternal(l.node, r.node),
		})
		seq++
	}
	return h[0].node, nil
}

// Number assigns postorder numbers, starting at 0, to every internal node of
// the tree so that the root receives the highest number. It returns the
// number of internal nodes. Leaves are left untouched.
func Number(root *Node) int {
	var next int
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			return
		}
		walk(n.Left)
		walk(n.Right)
		n.Num = next
		next++
	}
	walk(root)
	return next
}
