// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffpack

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/huffpack/huffman"
	"github.com/dsnet/huffpack/internal/testutil"
)

func TestReader(t *testing.T) {
	input := testutil.NewRand(3).SkewedBytes(1<<14, 64)
	packed, err := Compress(input, nil)
	require.NoError(t, err)

	for _, conf := range []*ReaderConfig{nil, {Postorder: true}} {
		zr, err := NewReader(bytes.NewReader(packed), conf)
		require.NoError(t, err)
		output, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(input, output), "output mismatch")
		assert.Equal(t, int64(len(packed)), zr.InputOffset)
		assert.Equal(t, int64(len(input)), zr.OutputOffset)

		require.NoError(t, zr.Close())
		_, err = zr.Read(make([]byte, 1))
		assert.Equal(t, errClosed, err)
		assert.NoError(t, zr.Close())
	}
}

func TestReaderSmallReads(t *testing.T) {
	input := []byte("abracadabra")
	packed, _ := Compress(input, nil)
	zr, _ := NewReader(bytes.NewReader(packed), nil)

	var output []byte
	var buf [3]byte
	for {
		cnt, err := zr.Read(buf[:])
		output = append(output, buf[:cnt]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.LessOrEqual(t, cnt, len(buf))
	}
	assert.Equal(t, input, output)

	// The Reader is reusable after Reset.
	packed, _ = Compress([]byte("Hello, world!"), nil)
	require.NoError(t, zr.Reset(bytes.NewReader(packed)))
	output, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, world!"), output)
}

func TestReaderErrors(t *testing.T) {
	packed, _ := Compress([]byte("Hello, world!"), nil)

	// Errors from the underlying io.Reader are persistent.
	br := &testutil.BuggyReader{R: bytes.NewReader(packed), N: 6, Err: io.ErrUnexpectedEOF}
	zr, _ := NewReader(br, nil)
	_, err := io.ReadAll(zr)
	assert.Equal(t, io.ErrUnexpectedEOF, err)
	assert.Equal(t, io.ErrUnexpectedEOF, zr.Close())

	// Truncated artifacts are reported as corrupted.
	zr, _ = NewReader(bytes.NewReader(packed[:len(packed)-1]), nil)
	output, err := io.ReadAll(zr)
	assert.Empty(t, output)
	assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
	assert.True(t, errors.Is(err, huffman.ErrUndecodable), "got %v", err)
	assert.True(t, errors.Is(zr.Close(), ErrCorrupt))
}
