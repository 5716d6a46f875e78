// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biogo/pcr/ipcress"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize METADATA",
	Short: "Print per-experiment product statistics from a product metadata table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := readMetadata(args[0])
		if err != nil {
			logger.Fatalf("%v", err)
		}
		for _, s := range ipcress.Summarize(m.Rows) {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
