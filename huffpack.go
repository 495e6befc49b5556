// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffpack

import "github.com/dsnet/huffpack/huffman"

// WriterConfig configures the encoder. A nil config uses the defaults.
type WriterConfig struct {
	// Optimize reassigns the symbols of the built tree by frequency before
	// it is serialized. The shape of the tree is preserved.
	Optimize bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// ReaderConfig configures the decoder. A nil config uses the defaults.
type ReaderConfig struct {
	// Postorder rebuilds the tree assuming that the records are stored in
	// postorder, ignoring the indexes recorded for internal children.
	// By default, internal children are resolved by their index.
	Postorder bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Compress returns the artifact for data.
//
// It returns huffman.ErrEmptyAlphabet if data is empty and ErrTooLarge if
// data is longer than MaxSize.
func Compress(data []byte, conf *WriterConfig) ([]byte, error) {
	if uint64(len(data)) > MaxSize {
		return nil, ErrTooLarge
	}

	freqs := huffman.MakeFrequencies(data)
	tree, err := huffman.Build(&freqs)
	if err != nil {
		return nil, err
	}
	if conf != nil && conf.Optimize {
		huffman.Improve(tree, &freqs)
	}
	cnt := huffman.Number(tree)
	codes, err := huffman.DeriveCodes(tree)
	if err != nil {
		return nil, err
	}
	payload, err := huffman.Pack(data, codes)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, countFieldLen+cnt*huffman.RecordSize+sizeFieldLen+len(payload))
	out = append(out, byte(cnt))
	out = huffman.AppendRecords(out, tree)
	out = appendSize(out, uint32(len(data)))
	return append(out, payload...), nil
}

// Decompress returns the original input stored in the artifact data.
// Every decoding failure is reported as an error wrapping ErrCorrupt.
func Decompress(data []byte, conf *ReaderConfig) ([]byte, error) {
	info, err := Inspect(data, conf)
	if err != nil {
		return nil, err
	}
	out, err := huffman.Unpack(info.payload, info.Tree, info.Size)
	if err != nil {
		return nil, errCorrupt(err)
	}
	return out, nil
}
