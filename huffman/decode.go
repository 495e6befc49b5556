// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// DecodeGeneral rebuilds the tree whose root is described by recs[root].
//
// Internal children are resolved by their absolute index into recs, so the
// records may appear in any order. Every internal node of the result has Num
// set to the index of the record it was built from.
//
// An out of range root reports ErrMalformedHeader. A child referencing a
// missing record, or a record referenced more than once, reports
// ErrInvalidReference.
func DecodeGeneral(recs []Record, root int) (tree *Node, err error) {
	defer errRecover(&err)
	if root < 0 || root >= len(recs) {
		return nil, ErrMalformedHeader
	}
	d := generalDecoder{recs: recs, seen: make([]bool, len(recs))}
	return d.decode(root), nil
}

type generalDecoder struct {
	recs []Record
	seen []bool // Records already materialized
}

func (d *generalDecoder) decode(idx int) *Node {
	if d.seen[idx] {
		panic(ErrInvalidReference)
	}
	d.seen[idx] = true
	r := d.recs[idx]
	return &Node{
		Left:  d.child(r.LeftKind, r.LeftValue),
		Right: d.child(r.RightKind, r.RightValue),
		Num:   idx,
	}
}

func (d *generalDecoder) child(kind, val byte) *Node {
	switch kind {
	case KindLeaf:
		return NewLeaf(val)
	case KindNode:
		if int(val) >= len(d.recs) {
			panic(ErrInvalidReference)
		}
		return d.decode(int(val))
	default:
		panic(ErrMalformedHeader)
	}
}

// DecodePostorder rebuilds the tree whose root is described by recs[root],
// assuming the records list the internal nodes in postorder. The values of
// internal children are ignored; instead, the right subtree of a node is
// formed by the records immediately preceding it and the left subtree by the
// records preceding those.
//
// Running out of records before the tree is complete reports
// ErrMalformedHeader. Records before the leftmost subtree are ignored.
func DecodePostorder(recs []Record, root int) (tree *Node, err error) {
	defer errRecover(&err)
	if root < 0 || root >= len(recs) {
		return nil, ErrMalformedHeader
	}
	d := postorderDecoder{recs: recs, pos: root}
	return d.decode(), nil
}

// postorderDecoder consumes records backwards from pos. The record list
// itself is never modified.
type postorderDecoder struct {
	recs []Record
	pos  int
}

func (d *postorderDecoder) decode() *Node {
	if d.pos < 0 {
		panic(ErrMalformedHeader)
	}
	idx := d.pos
	r := d.recs[idx]
	d.pos--

	n := &Node{Num: idx}
	n.Right = d.child(r.RightKind, r.RightValue)
	n.Left = d.child(r.LeftKind, r.LeftValue)
	return n
}

func (d *postorderDecoder) child(kind, val byte) *Node {
	switch kind {
	case KindLeaf:
		return NewLeaf(val)
	case KindNode:
		return d.decode()
	default:
		panic(ErrMalformedHeader)
	}
}
