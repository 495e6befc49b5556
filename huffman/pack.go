// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// Pack concatenates the code of every symbol in data and returns the bits
// packed most-significant bit first. The final byte is padded with zero bits.
// Every symbol in data must have a code in codes, otherwise ErrMissingCode is
// returned.
func Pack(data []byte, codes Codes) ([]byte, error) {
	var lut [256]Code
	var ok [256]bool
	for s, c := range codes {
		if c.Len > MaxCodeBits {
			return nil, ErrCodeOverflow
		}
		lut[s], ok[s] = c, true
	}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	for _, b := range data {
		if !ok[b] {
			return nil, ErrMissingCode
		}
		if err := bw.WriteBits(lut[b].Val, lut[b].Len); err != nil {
			return nil, err
		}
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack decodes exactly size symbols from the packed bits in buf by walking
// the tree from the root for every symbol. Bits after the last symbol are
// padding and are never interpreted.
//
// If the bits run out before size symbols are decoded, ErrUndecodable is
// returned and no partial output is provided.
func Unpack(buf []byte, root *Node, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrUndecodable
	}
	if root.IsLeaf() {
		// Every symbol is encoded with the empty code.
		return bytes.Repeat([]byte{root.Sym}, size), nil
	}
	if uint64(size) > 8*uint64(len(buf)) {
		return nil, ErrUndecodable // Every code is at least one bit
	}

	out := make([]byte, 0, size)
	br := bitio.NewReader(bytes.NewReader(buf))
	for len(out) < size {
		n := root
		for !n.IsLeaf() {
			bit, err := br.ReadBool()
			if err != nil {
				return nil, ErrUndecodable
			}
			if bit {
				n = n.Right
			} else {
				n = n.Left
			}
		}
		out = append(out, n.Sym)
	}
	return out, nil
}
