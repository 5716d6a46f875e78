// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check experiment, template and product metadata files",
	Run: func(cmd *cobra.Command, args []string) {
		if err := validate(cmd); err != nil {
			logger.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("experiments", "e", "", "ipcress experiment file")
	validateCmd.Flags().StringP("templates", "t", "", "FASTA file of template sequences")
	validateCmd.Flags().StringP("metadata", "m", "", "product metadata table")
}

func validate(cmd *cobra.Command) error {
	experiments, _ := cmd.Flags().GetString("experiments")
	templates, _ := cmd.Flags().GetString("templates")
	metadata, _ := cmd.Flags().GetString("metadata")
	if experiments == "" && templates == "" && metadata == "" {
		return errors.New("nothing to validate")
	}

	if experiments != "" {
		exps, err := readExperiments(experiments)
		if err != nil {
			return err
		}
		logger.Printf("%s: %d experiments", experiments, len(exps))
	}
	if templates != "" {
		n, err := readTemplates(templates)
		if err != nil {
			return err
		}
		logger.Printf("%s: %d template sequences", templates, n)
	}
	if metadata != "" {
		m, err := readMetadata(metadata)
		if err != nil {
			return err
		}
		logger.Printf("%s: %d products", metadata, len(m.Rows))
	}
	return nil
}
