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
)

var (
	decompressOutput    string
	decompressPostorder bool
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <file>",
	Short: "Decompress a file",
	Long:  "Decompress an artifact into <file>.orig, or into the path given by --output.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := decompressOutput
		if out == "" {
			out = in + ".orig"
		}
		return decompressFile(in, out, &huffpack.ReaderConfig{Postorder: decompressPostorder})
	},
}

func init() {
	decompressCmd.Flags().StringVarP(&decompressOutput, "output", "o", "", "Output path (default <file>.orig)")
	decompressCmd.Flags().BoolVar(&decompressPostorder, "postorder", false, "Rebuild the tree from record order, ignoring child indexes")
}

func decompressFile(in, out string, conf *huffpack.ReaderConfig) error {
	ts := time.Now()
	packed, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	data, err := huffpack.Decompress(packed, conf)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"in":      in,
		"out":     out,
		"inSize":  formatSize(len(packed)),
		"outSize": formatSize(len(data)),
		"elapsed": time.Since(ts),
	}).Infof("decompressed %s", in)
	return nil
}
