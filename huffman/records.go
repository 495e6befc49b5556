// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// RecordSize is the number of bytes used to serialize one internal node.
const RecordSize = 4

// Kinds of a child slot in a Record.
const (
	KindLeaf = 0 // Value is the symbol of a leaf
	KindNode = 1 // Value is the number of an internal node
)

// Record is the serialized form of one internal node, describing its two
// children. It is encoded as the bytes LeftKind, LeftValue, RightKind, and
// RightValue in that order.
type Record struct {
	LeftKind, LeftValue   byte
	RightKind, RightValue byte
}

// Append appends the 4-byte encoding of r to dst.
func (r Record) Append(dst []byte) []byte {
	return append(dst, r.LeftKind, r.LeftValue, r.RightKind, r.RightValue)
}

// NodeCount reports the value of the node count header field for a numbered
// tree, which is the number of internal nodes.
func NodeCount(root *Node) int { return root.Num + 1 }

// AppendRecords appends the serialized form of the numbered tree rooted at
// root to dst. Internal nodes are visited in postorder, which is the same
// order used by Number, so the i-th record describes the node numbered i.
// A tree that is a bare leaf has no records.
func AppendRecords(dst []byte, root *Node) []byte {
	if root.IsLeaf() {
		return dst
	}
	dst = AppendRecords(dst, root.Left)
	dst = AppendRecords(dst, root.Right)
	return recordOf(root).Append(dst)
}

func recordOf(n *Node) (r Record) {
	r.LeftKind, r.LeftValue = slotOf(n.Left)
	r.RightKind, r.RightValue = slotOf(n.Right)
	return r
}

func slotOf(n *Node) (kind, val byte) {
	if n.IsLeaf() {
		return KindLeaf, n.Sym
	}
	return KindNode, byte(n.Num)
}

// ParseRecords splits buf into records. The length of buf must be a multiple
// of RecordSize.
func ParseRecords(buf []byte) ([]Record, error) {
	if len(buf)%RecordSize != 0 {
		return nil, ErrMalformedHeader
	}
	recs := make([]Record, 0, len(buf)/RecordSize)
	for ; len(buf) > 0; buf = buf[RecordSize:] {
		recs = append(recs, Record{
			LeftKind: buf[0], LeftValue: buf[1],
			RightKind: buf[2], RightValue: buf[3],
		})
	}
	return recs, nil
}
