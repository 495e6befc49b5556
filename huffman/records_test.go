// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/huffpack/internal/testutil"
)

func TestAppendRecords(t *testing.T) {
	var vectors = []struct {
		desc  string
		tree  *Node
		count int
		want  []byte
	}{{
		desc:  "two leaves",
		tree:  in(lf(3), lf(2)),
		count: 1,
		want:  []byte{0, 3, 0, 2},
	}, {
		desc:  "internal left child",
		tree:  in(in(lf(3), lf(2)), lf(5)),
		count: 2,
		want:  []byte{0, 3, 0, 2, 1, 0, 0, 5},
	}, {
		desc:  "internal right child",
		tree:  in(lf(5), in(lf(3), lf(2))),
		count: 2,
		want:  []byte{0, 3, 0, 2, 0, 5, 1, 0},
	}, {
		desc:  "both children internal",
		tree:  in(in(lf(0), lf(1)), in(lf(2), lf(3))),
		count: 3,
		want:  []byte{0, 0, 0, 1, 0, 2, 0, 3, 1, 0, 1, 1},
	}, {
		desc:  "bare leaf",
		tree:  lf(1),
		count: 0,
		want:  nil,
	}}

	for i, v := range vectors {
		Number(v.tree)
		got := AppendRecords(nil, v.tree)
		if !bytes.Equal(got, v.want) {
			t.Errorf("test %d (%s), records mismatch: got %v, want %v", i, v.desc, got, v.want)
		}
		if !v.tree.IsLeaf() {
			if n := NodeCount(v.tree); n != v.count {
				t.Errorf("test %d (%s), node count mismatch: got %d, want %d", i, v.desc, n, v.count)
			}
		}
	}
}

func TestParseRecords(t *testing.T) {
	got, err := ParseRecords([]byte{0, 1, 0, 2, 1, 0, 0, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Record{{0, 1, 0, 2}, {1, 0, 0, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseRecords([]byte{0, 1, 0}); err != ErrMalformedHeader {
		t.Errorf("error mismatch: got %v, want %v", err, ErrMalformedHeader)
	}
}

func TestDecodeGeneral(t *testing.T) {
	var vectors = []struct {
		desc string
		recs []Record
		root int
		want *Node
		err  error
	}{{
		desc: "references in arbitrary order",
		recs: []Record{{0, 5, 0, 7}, {0, 10, 0, 12}, {1, 1, 1, 0}},
		root: 2,
		want: in(in(lf(10), lf(12)), in(lf(5), lf(7))),
	}, {
		desc: "root not last",
		recs: []Record{{1, 1, 0, 9}, {0, 1, 0, 2}},
		root: 0,
		want: in(in(lf(1), lf(2)), lf(9)),
	}, {
		desc: "root out of range",
		recs: []Record{{0, 1, 0, 2}},
		root: 1,
		err:  ErrMalformedHeader,
	}, {
		desc: "no records",
		root: 0,
		err:  ErrMalformedHeader,
	}, {
		desc: "reference out of range",
		recs: []Record{{0, 1, 1, 5}},
		root: 0,
		err:  ErrInvalidReference,
	}, {
		desc: "self reference",
		recs: []Record{{1, 0, 0, 1}},
		root: 0,
		err:  ErrInvalidReference,
	}, {
		desc: "shared subtree",
		recs: []Record{{0, 1, 0, 2}, {1, 0, 1, 0}},
		root: 1,
		err:  ErrInvalidReference,
	}, {
		desc: "unknown kind",
		recs: []Record{{2, 0, 0, 1}},
		root: 0,
		err:  ErrMalformedHeader,
	}}

	for i, v := range vectors {
		got, err := DecodeGeneral(v.recs, v.root)
		if err != v.err {
			t.Errorf("test %d (%s), error mismatch: got %v, want %v", i, v.desc, err, v.err)
			continue
		}
		if diff := cmp.Diff(v.want, got, ignoreNum); diff != "" {
			t.Errorf("test %d (%s), tree mismatch (-want +got):\n%s", i, v.desc, diff)
		}
	}
}

func TestDecodePostorder(t *testing.T) {
	var vectors = []struct {
		desc string
		recs []Record
		root int
		want *Node
		err  error
	}{{
		desc: "values of internal children are ignored",
		recs: []Record{{0, 5, 0, 7}, {0, 10, 0, 12}, {1, 0, 1, 0}},
		root: 2,
		want: in(in(lf(5), lf(7)), in(lf(10), lf(12))),
	}, {
		desc: "left spine",
		recs: []Record{{0, 1, 0, 2}, {1, 0, 0, 3}, {1, 0, 0, 4}},
		root: 2,
		want: in(in(in(lf(1), lf(2)), lf(3)), lf(4)),
	}, {
		desc: "records before the tree are ignored",
		recs: []Record{{0, 8, 0, 9}, {0, 1, 0, 2}},
		root: 1,
		want: in(lf(1), lf(2)),
	}, {
		desc: "root out of range",
		recs: []Record{{0, 1, 0, 2}},
		root: -1,
		err:  ErrMalformedHeader,
	}, {
		desc: "missing subtree",
		recs: []Record{{0, 1, 1, 0}},
		root: 0,
		err:  ErrMalformedHeader,
	}, {
		desc: "unknown kind",
		recs: []Record{{0, 1, 0, 2}, {0, 3, 7, 0}},
		root: 1,
		err:  ErrMalformedHeader,
	}}

	for i, v := range vectors {
		got, err := DecodePostorder(v.recs, v.root)
		if err != v.err {
			t.Errorf("test %d (%s), error mismatch: got %v, want %v", i, v.desc, err, v.err)
			continue
		}
		if diff := cmp.Diff(v.want, got, ignoreNum); diff != "" {
			t.Errorf("test %d (%s), tree mismatch (-want +got):\n%s", i, v.desc, diff)
		}
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	r := testutil.NewRand(4)
	for i := 0; i < 100; i++ {
		syms := r.Bytes(2 + r.Intn(255))
		tree := randTree(r, syms)
		k := Number(tree)

		buf := AppendRecords(nil, tree)
		if len(buf) != RecordSize*k {
			t.Errorf("test %d, serialized size mismatch: got %d, want %d", i, len(buf), RecordSize*k)
		}
		recs, err := ParseRecords(buf)
		if err != nil {
			t.Fatalf("test %d, unexpected ParseRecords error: %v", i, err)
		}

		general, err := DecodeGeneral(recs, tree.Num)
		if err != nil {
			t.Errorf("test %d, unexpected DecodeGeneral error: %v", i, err)
		} else if diff := cmp.Diff(tree, general); diff != "" {
			t.Errorf("test %d, DecodeGeneral mismatch (-want +got):\n%s", i, diff)
		}

		postorder, err := DecodePostorder(recs, tree.Num)
		if err != nil {
			t.Errorf("test %d, unexpected DecodePostorder error: %v", i, err)
		} else if diff := cmp.Diff(tree, postorder); diff != "" {
			t.Errorf("test %d, DecodePostorder mismatch (-want +got):\n%s", i, diff)
		}
	}
}
