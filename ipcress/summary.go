// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds per-experiment product statistics.
type Summary struct {
	Experiment string
	Products   int

	MinLength  int
	MaxLength  int
	MeanLength float64

	MeanFwdFrac float64
	MeanRevFrac float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d products, length %d-%d (mean %.1f), mean match fwd %.3f rev %.3f",
		s.Experiment, s.Products, s.MinLength, s.MaxLength, s.MeanLength, s.MeanFwdFrac, s.MeanRevFrac)
}

// Summarize returns a Summary for each experiment in rows, in order of
// first appearance.
func Summarize(rows []Row) []Summary {
	type cols struct {
		length, fwd, rev []float64
	}
	var order []string
	byExp := make(map[string]*cols)
	for _, r := range rows {
		c, ok := byExp[r.Experiment]
		if !ok {
			c = &cols{}
			byExp[r.Experiment] = c
			order = append(order, r.Experiment)
		}
		c.length = append(c.length, float64(r.Length))
		c.fwd = append(c.fwd, r.MatchesFwdFrac)
		c.rev = append(c.rev, r.MatchesRevFrac)
	}

	sums := make([]Summary, 0, len(order))
	for _, e := range order {
		c := byExp[e]
		sums = append(sums, Summary{
			Experiment:  e,
			Products:    len(c.length),
			MinLength:   int(floats.Min(c.length)),
			MaxLength:   int(floats.Max(c.length)),
			MeanLength:  stat.Mean(c.length, nil),
			MeanFwdFrac: stat.Mean(c.fwd, nil),
			MeanRevFrac: stat.Mean(c.rev, nil),
		})
	}
	return sums
}
