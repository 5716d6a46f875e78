// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/pcr/ipcress"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run ipcress and write PCR products and product metadata",
	Long: `Run ipcress and write PCR products and product metadata.

The experiment and template files are checked before ipcress is run. Each
product reported by ipcress is written to the products FASTA file and to
the metadata table, keyed by the product identifier without its ":filter"
annotation. Output files ending in .gz are compressed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := simulate(cmd); err != nil {
			logger.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	f := simulateCmd.Flags()
	f.StringP("templates", "t", "", "FASTA file of template sequences")
	f.StringP("experiments", "e", "", "ipcress experiment file")
	f.String("products", "products.fasta", "output FASTA file of PCR products")
	f.String("metadata", "product-metadata.tsv", "output product metadata table")
	f.String("length-plot", "", "write a product length histogram to this image file")
	f.String("ipcress", "ipcress", "ipcress executable")
	f.Int("seed", ipcress.DefaultParams.Seed, "ipcress seed length")
	f.Int("memory", ipcress.DefaultParams.Memory, "ipcress memory limit (Mb)")
	f.Int("mismatch", ipcress.DefaultParams.Mismatch, "primer mismatches allowed")
	f.Int("width", 60, "FASTA line width (0 for unwrapped)")

	simulateCmd.MarkFlagRequired("templates")
	simulateCmd.MarkFlagRequired("experiments")

	for _, name := range []string{"ipcress", "seed", "memory", "mismatch", "width"} {
		viper.BindPFlag(name, f.Lookup(name))
	}
}

func simulate(cmd *cobra.Command) error {
	conf, err := newConfig()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	templates, _ := f.GetString("templates")
	experiments, _ := f.GetString("experiments")
	productsPath, _ := f.GetString("products")
	metadataPath, _ := f.GetString("metadata")
	plotPath, _ := f.GetString("length-plot")

	exps, err := readExperiments(experiments)
	if err != nil {
		return err
	}
	logger.Printf("read %d experiments from %s", len(exps), experiments)
	n, err := readTemplates(templates)
	if err != nil {
		return err
	}
	logger.Printf("read %d template sequences from %s", n, templates)

	products, err := ipcress.Simulate(ipcress.New(conf.Ipcress, experiments, templates, conf.params()), logger)
	if err != nil {
		return err
	}
	meta, err := ipcress.NewMetadata(products)
	if err != nil {
		return err
	}

	out, err := xopen.Wopen(productsPath)
	if err != nil {
		return fmt.Errorf("failed to open %q: %v", productsPath, err)
	}
	err = ipcress.WriteFASTA(out, products, conf.Width)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %q: %v", productsPath, err)
	}

	out, err = xopen.Wopen(metadataPath)
	if err != nil {
		return fmt.Errorf("failed to open %q: %v", metadataPath, err)
	}
	_, err = meta.WriteTo(out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %q: %v", metadataPath, err)
	}
	logger.Printf("wrote %d products to %s and %s", len(products), productsPath, metadataPath)

	for _, s := range ipcress.Summarize(meta.Rows) {
		logger.Print(s)
	}

	if plotPath != "" {
		err = plotLengths(meta.Rows, plotPath)
		if err != nil {
			return fmt.Errorf("failed to plot lengths: %v", err)
		}
	}
	return nil
}

func readExperiments(path string) ([]ipcress.Experiment, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %v", path, err)
	}
	defer fh.Close()
	exps, err := ipcress.ReadExperiments(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return exps, nil
}

func readTemplates(path string) (int, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %q: %v", path, err)
	}
	defer fh.Close()
	n, err := ipcress.ReadTemplates(fh)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func readMetadata(path string) (*ipcress.Metadata, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %v", path, err)
	}
	defer fh.Close()
	m, err := ipcress.ReadMetadata(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
