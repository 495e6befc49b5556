// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffbench compares the performance of huffpack against other
// compression implementations. Individual implementations are referred to as
// codecs.
//
// Example usage:
//	$ huffbench \
//		--formats huf,fl,zstd             \
//		--tests   encRate,ratio           \
//		--inputs  gen:skewed,twain.txt    \
//		--levels  6                       \
//		--sizes   1e4,1e5,1e6
package main

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsnet/huffpack/internal/tool/bench"
)

const (
	defaultLevels = "1,6,9"
	defaultSizes  = "1e4,1e5,1e6"
)

// The decompression speed benchmark works by decompressing some pre-compressed
// data. In order for the benchmarks to be consistent, the same encoder should
// be used to generate the pre-compressed data for all the trials.
//
// encRefs defines the priority order for which encoders to choose first as the
// reference compressor. If no compressor is found for any of the listed codecs,
// then a random encoder will be chosen.
var encRefs = []string{"hp", "std", "kp", "ds", "uk"}

var (
	allFormats = []bench.Format{
		bench.FormatHuffpack, bench.FormatFlate, bench.FormatBZ2,
		bench.FormatXZ, bench.FormatBrotli, bench.FormatZstd,
	}
	allTests = []bench.Test{
		bench.TestEncodeRate, bench.TestDecodeRate, bench.TestCompressRatio,
	}
)

var log = logrus.New()

var flags struct {
	formats, tests, codecs string
	paths, inputs          string
	levels, sizes          string
	verbose                bool
}

var rootCmd = &cobra.Command{
	Use:          "huffbench",
	Short:        "Compare huffpack against other compressors",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flags.verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		cfg, err := parseFlags()
		if err != nil {
			return err
		}

		ts := time.Now()
		bench.Paths = cfg.paths
		runBenchmarks(cfg)
		fmt.Printf("RUNTIME: %v\n", time.Since(ts))
		return nil
	},
}

func init() {
	log.SetOutput(os.Stderr)
	fs := rootCmd.Flags()
	fs.StringVar(&flags.formats, "formats", defaultFormats(), "List of formats to benchmark")
	fs.StringVar(&flags.tests, "tests", defaultTests(), "List of different benchmark tests")
	fs.StringVar(&flags.codecs, "codecs", defaultCodecs(), "List of codecs to benchmark")
	fs.StringVar(&flags.paths, "paths", ".", "List of paths to search for input files")
	fs.StringVar(&flags.inputs, "inputs", strings.Join(bench.GeneratorNames(), ","), "List of input files or gen:NAME synthetic inputs to benchmark")
	fs.StringVar(&flags.levels, "levels", defaultLevels, "List of compression levels to benchmark")
	fs.StringVar(&flags.sizes, "sizes", defaultSizes, "List of input sizes to benchmark")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debugging details")
}

type config struct {
	codecs, paths, inputs []string
	formats               []bench.Format
	tests                 []bench.Test
	levels, sizes         []int
}

func parseFlags() (cfg config, err error) {
	var sep = regexp.MustCompile("[,:]")
	split := func(s string) []string { return sep.Split(s, -1) }

	cfg.codecs = split(flags.codecs)
	cfg.paths = split(flags.paths)
	cfg.inputs = strings.Split(flags.inputs, ",") // Generator names contain ':'
	for _, s := range split(flags.formats) {
		ft, ok := lookupFormat(s)
		if !ok {
			return cfg, fmt.Errorf("invalid format: %q", s)
		}
		cfg.formats = append(cfg.formats, ft)
	}
	for _, s := range split(flags.tests) {
		tt, ok := lookupTest(s)
		if !ok {
			return cfg, fmt.Errorf("invalid test: %q", s)
		}
		cfg.tests = append(cfg.tests, tt)
	}
	for _, s := range split(flags.levels) {
		lvl, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			return cfg, fmt.Errorf("invalid level: %q", s)
		}
		cfg.levels = append(cfg.levels, int(lvl))
	}
	for _, s := range split(flags.sizes) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil || nf < 0 || math.IsInf(nf, 0) {
			return cfg, fmt.Errorf("invalid size: %q", s)
		}
		cfg.sizes = append(cfg.sizes, int(nf))
	}
	return cfg, nil
}

func lookupFormat(s string) (bench.Format, bool) {
	for _, ft := range allFormats {
		if ft.String() == s {
			return ft, true
		}
	}
	return 0, false
}

func lookupTest(s string) (bench.Test, bool) {
	for _, tt := range allTests {
		if tt.String() == s {
			return tt, true
		}
	}
	return 0, false
}

func defaultTests() string {
	var s []string
	for _, tt := range allTests {
		s = append(s, tt.String())
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	for _, v := range bench.Decoders {
		for k := range v {
			m[k] = true
		}
	}
	hasHP := m["hp"]
	delete(m, "hp")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasHP {
		s = append([]string{"hp"}, s...) // Ensure "hp" always appears first
	}
	return strings.Join(s, ",")
}

func defaultFormats() string {
	var s []string
	for _, ft := range allFormats {
		if len(bench.Encoders[ft]) > 0 || len(bench.Decoders[ft]) > 0 {
			s = append(s, ft.String())
		}
	}
	return strings.Join(s, ",")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runBenchmarks(cfg config) {
	for _, f := range cfg.formats {
		// Get lists of encoders and decoders that exist.
		var encs, decs []string
		for _, c := range cfg.codecs {
			if _, ok := bench.Encoders[f][c]; ok {
				encs = append(encs, c)
			}
		}
		for _, c := range cfg.codecs {
			if _, ok := bench.Decoders[f][c]; ok {
				decs = append(decs, c)
			}
		}
		log.WithFields(logrus.Fields{
			"format":   f,
			"encoders": encs,
			"decoders": decs,
		}).Debug("selected codecs")

		for _, t := range cfg.tests {
			var results [][]bench.Result
			var names, codecs []string
			var title, suffix string

			// Check that we can actually do this bench.
			fmt.Printf("BENCHMARK: %v:%v\n", f, t)
			if len(encs) == 0 {
				fmt.Print("\tSKIP: There are no encoders available.\n\n")
				continue
			}
			if len(decs) == 0 && t == bench.TestDecodeRate {
				fmt.Print("\tSKIP: There are no decoders available.\n\n")
				continue
			}

			// Progress ticker.
			var cnt int
			tick := func() {
				total := len(codecs) * len(cfg.inputs) * len(cfg.levels) * len(cfg.sizes)
				pct := 100.0 * float64(cnt) / float64(total)
				fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
				cnt++
			}

			// Perform the bench. This may take some time.
			switch t {
			case bench.TestEncodeRate:
				codecs, title, suffix = encs, "MB/s", ""
				results, names = bench.BenchmarkEncoderSuite(f, encs, cfg.inputs, cfg.levels, cfg.sizes, tick)
			case bench.TestDecodeRate:
				ref := getReferenceEncoder(f)
				codecs, title, suffix = decs, "MB/s", ""
				results, names = bench.BenchmarkDecoderSuite(f, decs, cfg.inputs, cfg.levels, cfg.sizes, ref, tick)
			case bench.TestCompressRatio:
				codecs, title, suffix = encs, "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(f, encs, cfg.inputs, cfg.levels, cfg.sizes, tick)
			default:
				panic("unknown test")
			}

			// Print all of the results.
			printResults(results, names, codecs, title, suffix)
			fmt.Println()
		}
		fmt.Println()
	}
}

func getReferenceEncoder(f bench.Format) bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[f][c]; ok {
			return enc // Choose by priority
		}
	}
	for _, enc := range bench.Encoders[f] {
		return enc // Choose any random encoder
	}
	return nil // There are no encoders
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
