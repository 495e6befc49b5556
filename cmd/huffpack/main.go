// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffpack compresses and decompresses single files with a Huffman
// code.
//
// Example usage:
//	$ huffpack compress twain.txt          # Writes twain.txt.huf
//	$ huffpack decompress twain.txt.huf    # Writes twain.txt.huf.orig
//	$ huffpack inspect --codes twain.txt.huf
package main

import (
	"os"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log     = logrus.New()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "huffpack",
	Short: "Huffman file compressor",
	Long:  "huffpack compresses a file into a single artifact holding the Huffman tree, the original size, and the packed codes.",

	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debugging details")
}

// formatSize renders n as a human readable number of bytes.
func formatSize(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2) + "B"
}

func main() {
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
