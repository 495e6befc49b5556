// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"testing"
)

func TestDecodeBitGen(t *testing.T) {
	var vectors = []struct {
		desc   string
		input  string
		output []byte
		fail   bool
	}{{
		desc: "missing packing mode",
		input: `
			0101
		`,
		fail: true,
	}, {
		desc:   "empty big-endian stream",
		input:  `>>>`,
		output: nil,
	}, {
		desc: "big-endian codes padded to a byte",
		input: `>>> >
			10 11 10 0 # Symbols: 1, 2, 1, 0
		`,
		output: []byte{0xb8},
	}, {
		desc: "big-endian codes spilling into a second byte",
		input: `>>> >
			10 11 10 0 11 # Symbols: 1, 2, 1, 0, 2
		`,
		output: []byte{0xb9, 0x80},
	}, {
		desc: "raw literals are verbatim in big-endian packing",
		input: `>>>
			X:012c0000
		`,
		output: []byte{0x01, 0x2c, 0x00, 0x00},
	}, {
		desc: "big-endian decimal value",
		input: `>>> >
			D8:44 H8:01 0*16
		`,
		output: []byte{44, 1, 0, 0},
	}, {
		desc: "little-endian bits",
		input: `<<<
			< 1 0*7
		`,
		output: []byte{0x01},
	}, {
		desc: "unaligned raw literal",
		input: `>>>
			1 X:ff
		`,
		fail: true,
	}, {
		desc:  "unknown token",
		input: `>>> 2`,
		fail:  true,
	}}

	for i, v := range vectors {
		got, err := DecodeBitGen(v.input)
		if v.fail {
			if err == nil {
				t.Errorf("test %d (%s), unexpected success", i, v.desc)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d (%s), unexpected error: %v", i, v.desc, err)
			continue
		}
		if !bytes.Equal(got, v.output) {
			t.Errorf("test %d (%s), output mismatch:\ngot  %x\nwant %x", i, v.desc, got, v.output)
		}
	}
}
