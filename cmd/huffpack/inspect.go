// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsnet/huffpack"
	"github.com/dsnet/huffpack/huffman"
)

var (
	inspectCodes     bool
	inspectRecords   bool
	inspectPostorder bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Describe the header of an artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packed, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		info, err := huffpack.Inspect(packed, &huffpack.ReaderConfig{Postorder: inspectPostorder})
		if err != nil {
			return err
		}
		return printInfo(cmd.OutOrStdout(), info)
	},
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectCodes, "codes", "c", false, "Print the code of every symbol")
	inspectCmd.Flags().BoolVarP(&inspectRecords, "records", "r", false, "Print the serialized node records")
	inspectCmd.Flags().BoolVar(&inspectPostorder, "postorder", false, "Rebuild the tree from record order, ignoring child indexes")
}

func printInfo(w io.Writer, info *huffpack.Info) error {
	fmt.Fprintf(w, "nodes:   %d\n", info.NodeCount)
	fmt.Fprintf(w, "size:    %d (%s)\n", info.Size, formatSize(info.Size))
	fmt.Fprintf(w, "payload: %d (%s)\n", info.PayloadLen, formatSize(info.PayloadLen))
	fmt.Fprintf(w, "depth:   %d\n", info.Tree.Depth())
	fmt.Fprintf(w, "tree:    %v\n", info.Tree)
	if inspectRecords {
		fmt.Fprintln(w, "records:")
		for i, r := range info.Records {
			fmt.Fprintf(w, "\t%3d: %v\n", i, r)
		}
	}
	if inspectCodes {
		codes, err := huffman.DeriveCodes(info.Tree)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "codes: %v\n", codes)
	}
	return nil
}
