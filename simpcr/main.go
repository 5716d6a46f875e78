// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// simpcr runs in-silico PCR with exonerate's ipcress and writes the
// products as FASTA and a tab-separated product metadata report.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	logger = log.New(os.Stderr, "simpcr: ", log.LstdFlags)

	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "simpcr",
	Short: "Simulate PCR against template sequences with ipcress",
	Long: `simpcr runs exonerate's ipcress over a set of template sequences for
each primer pair of an experiment file, then writes the amplified products
as FASTA and a product metadata table.

Settings may be given as flags, as SIMPCR_* environment variables or in a
simpcr.yaml file in the working directory or $HOME.`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is simpcr.yaml in . or $HOME)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}
