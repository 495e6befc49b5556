// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffpack is a fuzz harness that checks the huffpack decoders against
// each other and the encoder against both decoders.
package huffpack

import (
	"bytes"
	"errors"

	"github.com/dsnet/huffpack"
)

// Fuzz treats data both as an artifact and as raw input. It panics when the
// codecs disagree and returns 1 for inputs that decode successfully.
func Fuzz(data []byte) int {
	_, ok := testDecoders(data)
	testEncoder(data, false)
	testEncoder(data, true)
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders tests that the input can be handled by both tree decoders.
// The decoders may legitimately rebuild different trees from the same
// records, but if the trees match then so must the outputs.
func testDecoders(data []byte) ([]byte, bool) {
	gb, gerr := huffpack.Decompress(data, nil)
	pb, perr := huffpack.Decompress(data, &huffpack.ReaderConfig{Postorder: true})
	for _, err := range []error{gerr, perr} {
		if err != nil && !errors.Is(err, huffpack.ErrCorrupt) {
			panic(err)
		}
	}

	switch {
	case gerr == nil && perr == nil:
		info, err := huffpack.Inspect(data, nil)
		if err != nil {
			panic(err)
		}
		if sameTree(data, info) && !bytes.Equal(gb, pb) {
			panic("mismatching bytes")
		}
		return gb, true
	case gerr == nil:
		return gb, true
	case perr == nil:
		return pb, true
	default:
		return nil, false
	}
}

// sameTree reports whether the postorder decoder rebuilds the tree in info.
func sameTree(data []byte, info *huffpack.Info) bool {
	pinfo, err := huffpack.Inspect(data, &huffpack.ReaderConfig{Postorder: true})
	if err != nil {
		return false
	}
	return info.Tree.String() == pinfo.Tree.String()
}

// testEncoder compresses the input and checks that both decoders recover it.
func testEncoder(data []byte, optimize bool) {
	packed, err := huffpack.Compress(data, &huffpack.WriterConfig{Optimize: optimize})
	if len(data) == 0 {
		if err == nil {
			panic("empty input accepted")
		}
		return
	}
	if err != nil {
		panic(err)
	}
	for _, postorder := range []bool{false, true} {
		output, err := huffpack.Decompress(packed, &huffpack.ReaderConfig{Postorder: postorder})
		if err != nil {
			panic(err)
		}
		if !bytes.Equal(output, data) {
			panic("round trip mismatch")
		}
	}
}
