// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffpack implements a single-block file format that stores a byte
// buffer compressed with a Huffman code, along with the serialized code tree
// needed to decompress it.
//
// The artifact has the following layout:
//
//	+------------+---------------------+---------------+---------+
//	| node count | node records        | original size | payload |
//	| 1 byte     | 4 bytes × node count| 4 bytes (LE)  | rest    |
//	+------------+---------------------+---------------+---------+
//
// The node records are described in package huffman. The whole input is
// held in memory during compression and decompression.
package huffpack

import (
	"fmt"

	"github.com/dsnet/huffpack/internal"
)

var (
	// ErrCorrupt reports a malformed artifact. The error returned by the
	// decoder wraps both ErrCorrupt and the huffman error that caused it.
	ErrCorrupt error = internal.Error("stream is corrupted")

	// ErrTooLarge reports an input whose length does not fit the 32-bit
	// original size field.
	ErrTooLarge error = internal.Error("input exceeds maximum size")

	errClosed error = internal.Error("stream is closed")
)

func errCorrupt(err error) error {
	return fmt.Errorf("%w: %w", ErrCorrupt, err)
}
