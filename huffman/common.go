// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements the byte-oriented prefix code used by huffpack.
//
// A tree is built from the byte histogram of an input using the greedy
// weighted-merge algorithm. Each internal node of the tree is serialized as a
// 4-byte record describing its two children, in postorder, such that the
// decoder can rebuild the exact same tree. The payload is the concatenation of
// the codes of each input byte, packed most-significant bit first and padded
// with zero bits up to a byte boundary.
//
// For performance reasons, the tree algorithms lack strong error checking and
// require that the caller ensure that trees passed in were produced by Build,
// DecodeGeneral, or DecodePostorder. Only the decoders validate their input.
package huffman

import "runtime"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	ErrEmptyAlphabet    error = Error("empty alphabet")
	ErrMalformedHeader  error = Error("malformed tree header")
	ErrInvalidReference error = Error("invalid tree reference")
	ErrUndecodable      error = Error("undecodable bit stream")
	ErrCodeOverflow     error = Error("prefix code exceeds 64 bits")
	ErrMissingCode      error = Error("symbol has no prefix code")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
