// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffpack

import (
	"testing"

	"github.com/dsnet/huffpack"
	"github.com/dsnet/huffpack/internal/testutil"
)

func FuzzHuffpack(f *testing.F) {
	r := testutil.NewRand(0)
	for _, b := range [][]byte{
		nil,
		{0},
		[]byte("Hello, world!"),
		r.SkewedBytes(1000, 16),
		testutil.MustDecodeHex("0200000002000101000400000068"),
		testutil.MustDecodeHex("0200000002000101070400000068"),
		testutil.MustDecodeHex("01010500000100000000"),
	} {
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		Fuzz(data)
	})
}

func TestFuzzValid(t *testing.T) {
	packed, err := huffpack.Compress([]byte("abracadabra"), nil)
	if err != nil {
		t.Fatalf("unexpected Compress error: %v", err)
	}
	if got := Fuzz(packed); got != 1 {
		t.Errorf("Fuzz(valid artifact): got %d, want 1", got)
	}
	if got := Fuzz([]byte{0xff}); got != 0 {
		t.Errorf("Fuzz(invalid artifact): got %d, want 0", got)
	}
}
