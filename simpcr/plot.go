// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/pcr/ipcress"
)

const lengthBins = 20

// plotLengths writes a histogram of product lengths to path. The image
// format is chosen from the file extension.
func plotLengths(rows []ipcress.Row, path string) error {
	v := make(plotter.Values, len(rows))
	for i, r := range rows {
		v[i] = float64(r.Length)
	}

	p := plot.New()
	p.Title.Text = "PCR product lengths"
	p.X.Label.Text = "length (bp)"
	p.Y.Label.Text = "products"

	h, err := plotter.NewHist(v, lengthBins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
