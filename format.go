// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffpack

import (
	"encoding/binary"

	"github.com/dsnet/huffpack/huffman"
)

const (
	countFieldLen = 1
	sizeFieldLen  = 4

	// MaxSize is the largest input that the original size field can hold.
	MaxSize = 1<<32 - 1
)

func appendSize(dst []byte, n uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, n)
}

func readSize(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

// Info describes the contents of an artifact.
type Info struct {
	NodeCount  int              // Number of internal nodes in the tree
	Records    []huffman.Record // Serialized internal nodes
	Size       int              // Number of bytes in the original input
	PayloadLen int              // Number of bytes of packed codes
	Tree       *huffman.Node    // Tree rebuilt from the records

	payload []byte
}

// Inspect parses the header of an artifact and rebuilds its tree without
// decoding the payload.
func Inspect(data []byte, conf *ReaderConfig) (*Info, error) {
	var postorder bool
	if conf != nil {
		postorder = conf.Postorder
	}
	info, err := parseHeader(data, postorder)
	if err != nil {
		return nil, errCorrupt(err)
	}
	return info, nil
}

func parseHeader(data []byte, postorder bool) (*Info, error) {
	if len(data) < countFieldLen {
		return nil, huffman.ErrMalformedHeader
	}
	cnt := int(data[0])
	data = data[countFieldLen:]

	recLen := cnt * huffman.RecordSize
	if len(data) < recLen+sizeFieldLen {
		return nil, huffman.ErrMalformedHeader
	}
	recs, err := huffman.ParseRecords(data[:recLen])
	if err != nil {
		return nil, err
	}
	data = data[recLen:]

	decode := huffman.DecodeGeneral
	if postorder {
		decode = huffman.DecodePostorder
	}
	tree, err := decode(recs, cnt-1)
	if err != nil {
		return nil, err
	}

	size := readSize(data)
	data = data[sizeFieldLen:]
	return &Info{
		NodeCount:  cnt,
		Records:    recs,
		Size:       int(size),
		PayloadLen: len(data),
		Tree:       tree,
		payload:    data,
	}, nil
}
