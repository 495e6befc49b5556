// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import "github.com/dsnet/huffpack/internal/testutil"

const (
	genPrefix = "gen:"

	// defaultGenSize is the size of a synthetic input when none is requested.
	defaultGenSize = 1 << 18
)

// Generators produce synthetic inputs of a given size, selected by the
// "gen:NAME" input name. All generators are deterministic.
var Generators = map[string]func(n int) []byte{
	"zeros":   func(n int) []byte { return make([]byte, genSize(n)) },
	"random":  func(n int) []byte { return testutil.NewRand(0).Bytes(genSize(n)) },
	"skewed":  func(n int) []byte { return testutil.NewRand(0).SkewedBytes(genSize(n), 64) },
	"text":    func(n int) []byte { return testutil.ResizeData([]byte(sampleText), genSize(n)) },
	"repeats": genRepeats,
}

// GeneratorNames returns the input names of every generator.
func GeneratorNames() []string {
	var s []string
	for _, name := range []string{"random", "repeats", "skewed", "text", "zeros"} {
		s = append(s, genPrefix+name)
	}
	return s
}

func genSize(n int) int {
	if n < 0 {
		return defaultGenSize
	}
	return n
}

const sampleText = `The principle of Huffman coding is to use a lower number of bits to ` +
	`encode the data that occurs more frequently. Codes are stored in a code ` +
	`book which may be constructed for each data set or a set of data sets. ` +
	`The code book, or the tree it was built from, must be stored alongside ` +
	`the data so that it can be decoded again, which is why small inputs ` +
	`rarely shrink. `

// genRepeats returns data where a large bulk is a copy from some distance
// ago. This favors LZ77 based compression, and since the source data is
// mostly random, prefix encoding does not benefit as much.
func genRepeats(n int) []byte {
	n = genSize(n)
	r := testutil.NewRand(0)
	var b []byte

	randLen := func() int {
		switch p := r.Intn(100); {
		case p < 15: // 4..8
			return 4 + r.Intn(4)
		case p < 30: // 8..16
			return 8 + r.Intn(8)
		case p < 45: // 16..32
			return 16 + r.Intn(16)
		case p < 60: // 32..64
			return 32 + r.Intn(32)
		case p < 75: // 64..128
			return 64 + r.Intn(64)
		case p < 90: // 128..256
			return 128 + r.Intn(128)
		default: // 256..512
			return 256 + r.Intn(256)
		}
	}

	randDist := func() int {
		for {
			// Distances are spread over powers of two from 1 to 32768.
			d := 1 << uint(r.Intn(16))
			d += r.Intn(d)
			if d <= len(b) {
				return d
			}
		}
	}

	for len(b) < n {
		b = append(b, r.Bytes(randLen())...)
		for len(b) < n && r.Intn(10) < 9 {
			d, l := randDist(), randLen()
			for i := 0; i < l; i++ {
				b = append(b, b[len(b)-d])
			}
		}
	}
	return b[:n]
}
