// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/pcr/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch ACCESSION...",
	Short: "Retrieve template sequences from NCBI nuccore",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := newConfig()
		if err != nil {
			logger.Fatalf("%v", err)
		}
		path, _ := cmd.Flags().GetString("out")
		retmax, _ := cmd.Flags().GetInt("retmax")

		out, err := xopen.Wopen(path)
		if err != nil {
			logger.Fatalf("failed to open %q: %v", path, err)
		}
		n, err := fetch.Templates(out, args, fetch.Options{
			Email:   conf.Email,
			RetMax:  retmax,
			Retries: conf.Retries,
			Log:     logger,
		})
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			logger.Fatalf("%v", err)
		}
		logger.Printf("wrote %d bytes to %s", n, path)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	f := fetchCmd.Flags()
	f.StringP("out", "o", "templates.fasta", "output FASTA file")
	f.String("email", "", "email address sent to NCBI (required)")
	f.Int("retries", 5, "attempts to retrieve each batch")
	f.Int("retmax", 500, "records retrieved per request")

	viper.BindPFlag("email", f.Lookup("email"))
	viper.BindPFlag("retries", f.Lookup("retries"))
}
