// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/huffpack"
)

// optimizeLevel is the lowest level at which huffpack reassigns tree leaves
// before writing.
const optimizeLevel = 9

func init() {
	RegisterEncoder(FormatHuffpack, "hp",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := huffpack.NewWriter(w, &huffpack.WriterConfig{Optimize: lvl >= optimizeLevel})
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatHuffpack, "hp",
		func(r io.Reader) io.ReadCloser {
			zr, err := huffpack.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})
	RegisterDecoder(FormatHuffpack, "hp-post",
		func(r io.Reader) io.ReadCloser {
			zr, err := huffpack.NewReader(r, &huffpack.ReaderConfig{Postorder: true})
			if err != nil {
				panic(err)
			}
			return zr
		})
}
