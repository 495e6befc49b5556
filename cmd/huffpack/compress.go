// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsnet/huffpack"
	"github.com/dsnet/huffpack/huffman"
)

var (
	compressOutput   string
	compressOptimize bool
)

var compressCmd = &cobra.Command{
	Use:   "compress <file>",
	Short: "Compress a file",
	Long:  "Compress a file into <file>.huf, or into the path given by --output.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := compressOutput
		if out == "" {
			out = in + ".huf"
		}
		return compressFile(in, out, &huffpack.WriterConfig{Optimize: compressOptimize})
	},
}

func init() {
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "Output path (default <file>.huf)")
	compressCmd.Flags().BoolVarP(&compressOptimize, "optimize", "O", false, "Reassign tree leaves by frequency before writing")
}

func compressFile(in, out string, conf *huffpack.WriterConfig) error {
	ts := time.Now()
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	packed, err := huffpack.Compress(data, conf)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, packed, 0644); err != nil {
		return err
	}

	if info, err := huffpack.Inspect(packed, nil); err == nil {
		freqs := huffman.MakeFrequencies(data)
		log.WithFields(logrus.Fields{
			"symbols": freqs.Len(),
			"nodes":   info.NodeCount,
		}).Debugf("bits per symbol: %.4f", huffman.AvgLength(info.Tree, &freqs))
	}
	log.WithFields(logrus.Fields{
		"in":      in,
		"out":     out,
		"inSize":  formatSize(len(data)),
		"outSize": formatSize(len(packed)),
		"elapsed": time.Since(ts),
	}).Infof("compressed %s", in)
	return nil
}
