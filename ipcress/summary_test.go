// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"gopkg.in/check.v1"
)

func (s *S) TestSummarize(c *check.C) {
	rows := []Row{
		{Experiment: "b", Length: 100, MatchesFwdFrac: 1, MatchesRevFrac: 0.5},
		{Experiment: "a", Length: 300, MatchesFwdFrac: 0.5, MatchesRevFrac: 1},
		{Experiment: "b", Length: 200, MatchesFwdFrac: 0.5, MatchesRevFrac: 1},
	}
	got := Summarize(rows)
	c.Check(got, check.DeepEquals, []Summary{
		{Experiment: "b", Products: 2, MinLength: 100, MaxLength: 200, MeanLength: 150, MeanFwdFrac: 0.75, MeanRevFrac: 0.75},
		{Experiment: "a", Products: 1, MinLength: 300, MaxLength: 300, MeanLength: 300, MeanFwdFrac: 0.5, MeanRevFrac: 1},
	})
	c.Check(got[0].String(), check.Equals, "b: 2 products, length 100-200 (mean 150.0), mean match fwd 0.750 rev 0.750")
	c.Check(Summarize(nil), check.HasLen, 0)
}

func (s *S) TestSummarizeReport(c *check.C) {
	m, err := NewMetadata(its9mun)
	c.Assert(err, check.IsNil)
	got := Summarize(m.Rows)
	c.Assert(got, check.HasLen, 1)
	c.Check(got[0], check.DeepEquals, Summary{
		Experiment: "ITS9mun", Products: 2,
		MinLength: 2040, MaxLength: 2072, MeanLength: 2056,
		MeanFwdFrac: 1, MeanRevFrac: 1,
	})
}
