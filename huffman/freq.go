// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// Frequencies is a histogram of byte values. A symbol is present in the
// table if and only if its count is non-zero.
type Frequencies [256]uint64

// MakeFrequencies counts the occurrences of every byte in buf.
func MakeFrequencies(buf []byte) (f Frequencies) {
	f.Add(buf)
	return f
}

// Add adds the occurrences of every byte in buf to the histogram.
func (f *Frequencies) Add(buf []byte) {
	for _, b := range buf {
		f[b]++
	}
}

// Len reports the number of distinct symbols present.
func (f *Frequencies) Len() (n int) {
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}

// Total reports the sum of all counts.
func (f *Frequencies) Total() (n uint64) {
	for _, c := range f {
		n += c
	}
	return n
}

// Symbols returns the present symbols in ascending order.
func (f *Frequencies) Symbols() []byte {
	syms := make([]byte, 0, f.Len())
	for s, c := range f {
		if c > 0 {
			syms = append(syms, byte(s))
		}
	}
	return syms
}

// Map returns the table as a map from symbol to count, omitting absent
// symbols.
func (f *Frequencies) Map() map[byte]uint64 {
	m := make(map[byte]uint64)
	for s, c := range f {
		if c > 0 {
			m[byte(s)] = c
		}
	}
	return m
}
