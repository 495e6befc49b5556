// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func testRoundTrip(t *testing.T, enc Encoder, dec Decoder) {
	type entry struct {
		name  string // Name of the test
		input string // The input name
		level int    // The compression level
		size  int    // The size of the input
	}
	var vectors []entry
	for _, f := range GeneratorNames() {
		var l, s int = 6, 1e5
		vectors = append(vectors, entry{getName(f, l, s), f, l, s})
	}

	for i, v := range vectors {
		input, err := LoadInput(v.input, v.size)
		if err != nil {
			t.Fatalf("test %d, %s: unexpected error: %v", i, v.name, err)
		}
		buf := new(bytes.Buffer)
		wr := enc(buf, v.level)
		_, cpErr := io.Copy(wr, bytes.NewReader(input))
		if err := wr.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		hash := crc32.NewIEEE()
		rd := dec(buf)
		cnt, cpErr := io.Copy(hash, rd)
		if err := rd.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		sum := crc32.ChecksumIEEE(input)
		if int(cnt) != len(input) {
			t.Errorf("test %d, %s: mismatching count: got %d, want %d", i, v.name, cnt, len(input))
		}
		if hash.Sum32() != sum {
			t.Errorf("test %d, %s: mismatching checksum: got 0x%08x, want 0x%08x", i, v.name, hash.Sum32(), sum)
		}
	}
}

func TestHuffpackRoundTrip(t *testing.T) {
	for _, name := range []string{"hp", "hp-post"} {
		testRoundTrip(t, Encoders[FormatHuffpack]["hp"], Decoders[FormatHuffpack][name])
	}
}

func TestGenerators(t *testing.T) {
	for _, name := range GeneratorNames() {
		a, err := LoadInput(name, 1000)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		b, _ := LoadInput(name, 1000)
		if len(a) != 1000 {
			t.Errorf("%s: size mismatch: got %d, want 1000", name, len(a))
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s: output is not deterministic", name)
		}
	}
	if b, _ := LoadInput("gen:zeros", -1); len(b) != defaultGenSize {
		t.Errorf("default size mismatch: got %d, want %d", len(b), defaultGenSize)
	}
	if _, err := LoadInput("gen:bogus", 10); err == nil {
		t.Errorf("unknown generator: got nil error")
	}
}

func TestLoadInputFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "abc.txt"), []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	defer func(p []string) { Paths = p }(Paths)
	Paths = []string{filepath.Join(dir, "missing"), dir}

	b, err := LoadInput("abc.txt", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(b), "abcabca"; got != want {
		t.Errorf("input mismatch: got %q, want %q", got, want)
	}
}

func TestGetName(t *testing.T) {
	var vectors = []struct {
		file  string
		level int
		size  int
		want  string
	}{
		{"twain.txt", 6, 1e6, "twain.txt:6:1e6"},
		{"/tmp/twain.txt", 1, 1e4, "twain.txt:1:1e4"},
		{"gen:skewed", 9, 1e5, "gen:skewed:9:1e5"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.level, v.size); got != v.want {
			t.Errorf("test %d, getName(%q, %d, %d): got %q, want %q", i, v.file, v.level, v.size, got, v.want)
		}
	}
}
