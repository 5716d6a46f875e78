// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/check.v1"
)

var experiments = []Experiment{
	{ID: "ITS9mun", Forward: "GTACACACCGCCCGTCG", Reverse: "CCTSCSCTTANTDATATGC", MinLength: 500, MaxLength: 5000},
	{ID: "ITS1F", Forward: "CTTGGTCATTTAGAGGAAGTAA", Reverse: "GCTGCGTTCTTCATCGATGC", MinLength: 0, MaxLength: 1000},
}

func (s *S) TestReadExperiments(c *check.C) {
	in := "# experiment file\n" +
		"ITS9mun GTACACACCGCCCGTCG CCTSCSCTTANTDATATGC 500 5000\n" +
		"\n" +
		"ITS1F\tCTTGGTCATTTAGAGGAAGTAA  GCTGCGTTCTTCATCGATGC 0 1000\n"
	got, err := ReadExperiments(strings.NewReader(in))
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, experiments)
}

func (s *S) TestExperimentsRoundTrip(c *check.C) {
	var buf bytes.Buffer
	c.Assert(WriteExperiments(&buf, experiments), check.IsNil)
	c.Check(buf.String(), check.Equals,
		"ITS9mun GTACACACCGCCCGTCG CCTSCSCTTANTDATATGC 500 5000\n"+
			"ITS1F CTTGGTCATTTAGAGGAAGTAA GCTGCGTTCTTCATCGATGC 0 1000\n")
	got, err := ReadExperiments(&buf)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, experiments)
}

func (s *S) TestReadExperimentsInvalid(c *check.C) {
	for i, t := range []struct {
		in   string
		line int
		want string
	}{
		{in: "", want: "no experiments"},
		{in: "e1 ACGT TTGG 10\n", line: 1, want: "the ipcress experiment file should have 5 columns, 4 were found"},
		{in: "e1 ACGT TTGG 10 20\ne2 ACGT TTGG 10 20 30\n", line: 2, want: "the ipcress experiment file should have 5 columns, 6 were found"},
		{in: "e1 ACGT TTGG -1 20\n", line: 1, want: "the minimum length of a PCR product cannot be negative"},
		{in: "e1 ACGT TTGG 10 -20\n", line: 1, want: "the maximum length of a PCR product cannot be negative"},
		{in: "e1 ACGT TTGG ten 20\n", line: 1, want: `invalid minimum length "ten"`},
		{in: "e1 ACGT TTGG 10 2e3\n", line: 1, want: `invalid maximum length "2e3"`},
	} {
		_, err := ReadExperiments(strings.NewReader(t.in))
		var ve *ValidationError
		c.Assert(errors.As(err, &ve), check.Equals, true, check.Commentf("Test %d: %v", i, err))
		c.Check(ve.Line, check.Equals, t.line, check.Commentf("Test %d", i))
		c.Check(ve.Reason, check.Equals, t.want, check.Commentf("Test %d", i))
	}
}
