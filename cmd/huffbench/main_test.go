// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/huffpack/internal/tool/bench"
)

func TestParseFlags(t *testing.T) {
	saved := flags
	defer func() { flags = saved }()

	flags.formats = "huf,fl"
	flags.tests = "ratio:encRate"
	flags.codecs = "hp,std"
	flags.paths = "."
	flags.inputs = "gen:skewed,twain.txt"
	flags.levels = "1,9"
	flags.sizes = "1e4,1e5"

	cfg, err := parseFlags()
	require.NoError(t, err)
	assert.Equal(t, []bench.Format{bench.FormatHuffpack, bench.FormatFlate}, cfg.formats)
	assert.Equal(t, []bench.Test{bench.TestCompressRatio, bench.TestEncodeRate}, cfg.tests)
	assert.Equal(t, []string{"hp", "std"}, cfg.codecs)
	assert.Equal(t, []string{"gen:skewed", "twain.txt"}, cfg.inputs)
	assert.Equal(t, []int{1, 9}, cfg.levels)
	assert.Equal(t, []int{1e4, 1e5}, cfg.sizes)

	flags.formats = "lz4"
	_, err = parseFlags()
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.True(t, strings.HasPrefix(defaultCodecs(), "hp,"), "got %q", defaultCodecs())
	assert.Contains(t, defaultFormats(), "huf")
	assert.Equal(t, "encRate,decRate,ratio", defaultTests())
	assert.NotNil(t, getReferenceEncoder(bench.FormatHuffpack))
	assert.Nil(t, getReferenceEncoder(bench.FormatBrotli))
}
