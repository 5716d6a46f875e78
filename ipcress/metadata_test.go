// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/check.v1"
)

var its9munRows = []Row{
	{
		ID:             "ITS9mun_product_1 seq NC_012867.1",
		Experiment:     "ITS9mun",
		Target:         "NC_012867.1:filter(unmasked) Candida dubliniensis CD36 chromosome R, complete sequence",
		Orientation:    Forward,
		MatchesFwd:     "17/17",
		MatchesRev:     "19/19",
		MatchesFwdFrac: 1,
		MatchesRevFrac: 1,
		Length:         2072,
		RangeMin:       500,
		RangeMax:       5000,
		Start:          1864982,
	},
	{
		ID:             "ITS9mun_product_2 seq NC_042506.1",
		Experiment:     "ITS9mun",
		Target:         "NC_042506.1:filter(unmasked) Pichia kudriavzevii chromosome 1, complete sequence",
		Orientation:    Revcomp,
		MatchesFwd:     "17/17",
		MatchesRev:     "19/19",
		MatchesFwdFrac: 1,
		MatchesRevFrac: 1,
		Length:         2040,
		RangeMin:       500,
		RangeMax:       5000,
		Start:          1904,
	},
}

func (s *S) TestRowKey(c *check.C) {
	for i, t := range []struct {
		id   string
		want string
	}{
		{id: "p1 seq NC_1.1:filter(unmasked) start 3 length 4", want: "p1 seq NC_1.1"},
		{id: "p1 seq NC_1.1 start 3 length 4", want: "p1 seq NC_1.1 start 3 length 4"},
		{id: "p1 seq NC_1.1:filter(a):filter(b)", want: "p1 seq NC_1.1"},
	} {
		c.Check(RowKey(t.id), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestNewMetadata(c *check.C) {
	m, err := NewMetadata(its9mun)
	c.Assert(err, check.IsNil)
	c.Check(m.Rows, check.DeepEquals, its9munRows)
}

func (s *S) TestNewMetadataFractions(c *check.C) {
	products := []Product{
		{ID: "a:filter(x) start 1", MatchesFwd: "18/20", MatchesRev: "15/19", Orientation: Forward, Sequence: "A"},
		{ID: "b:filter(x) start 2", MatchesFwd: "1/4", MatchesRev: "3/3", Orientation: Revcomp, Sequence: "C"},
		{ID: "c start 3", MatchesFwd: "0/17", MatchesRev: "19/19", Orientation: Forward, Sequence: "G"},
	}
	m, err := NewMetadata(products)
	c.Assert(err, check.IsNil)
	c.Assert(m.Rows, check.HasLen, len(products))
	for i, r := range m.Rows {
		c.Check(r.ID, check.Equals, RowKey(products[i].ID), check.Commentf("Test %d", i))
		fwd, _ := MatchFraction(products[i].MatchesFwd)
		rev, _ := MatchFraction(products[i].MatchesRev)
		c.Check(r.MatchesFwdFrac, check.Equals, fwd, check.Commentf("Test %d", i))
		c.Check(r.MatchesRevFrac, check.Equals, rev, check.Commentf("Test %d", i))
	}
	c.Check(m.Rows[0].MatchesFwdFrac, check.Equals, 0.9)
}

func (s *S) TestNewMetadataDuplicateKey(c *check.C) {
	products := []Product{
		{ID: "p1 seq NC_1.1:filter(unmasked) start 3 length 4", MatchesFwd: "1/1", MatchesRev: "1/1", Sequence: "A"},
		{ID: "p1 seq NC_1.1:filter(masked) start 3 length 4", MatchesFwd: "1/1", MatchesRev: "1/1", Sequence: "A"},
	}
	_, err := NewMetadata(products)
	var dup *DuplicateIDError
	c.Assert(errors.As(err, &dup), check.Equals, true, check.Commentf("%v", err))
	c.Check(dup.ID, check.Equals, "p1 seq NC_1.1")
}

func (s *S) TestNewMetadataZeroDenominator(c *check.C) {
	_, err := NewMetadata([]Product{{ID: "p1", MatchesFwd: "1/0", MatchesRev: "1/1", Sequence: "A"}})
	c.Check(errors.Is(err, ErrZeroDenominator), check.Equals, true, check.Commentf("%v", err))
}

const its9munTSV = "id\texperiment\ttarget\tmatch_orientation\tmatches_fwd\tmatches_rev\tlength\trange_min\trange_max\tstart_position\tmatches_fwd_frac\tmatches_rev_frac\n" +
	"ITS9mun_product_1 seq NC_012867.1\tITS9mun\tNC_012867.1:filter(unmasked) Candida dubliniensis CD36 chromosome R, complete sequence\tforward\t17/17\t19/19\t2072\t500\t5000\t1864982\t1\t1\n" +
	"ITS9mun_product_2 seq NC_042506.1\tITS9mun\tNC_042506.1:filter(unmasked) Pichia kudriavzevii chromosome 1, complete sequence\trevcomp\t17/17\t19/19\t2040\t500\t5000\t1904\t1\t1\n"

func (s *S) TestMetadataWriteTo(c *check.C) {
	m := &Metadata{Rows: its9munRows}
	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	c.Assert(err, check.IsNil)
	c.Check(buf.String(), check.Equals, its9munTSV)
	c.Check(n, check.Equals, int64(buf.Len()))
	c.Check(strings.Contains(buf.String(), "GTACACACC"), check.Equals, false)
}

func (s *S) TestReadMetadata(c *check.C) {
	m, err := ReadMetadata(strings.NewReader(its9munTSV))
	c.Assert(err, check.IsNil)
	c.Check(m.Rows, check.DeepEquals, its9munRows)

	// Column order is irrelevant.
	f, err := os.Open(filepath.Join("testdata", "product_meta.tsv"))
	c.Assert(err, check.IsNil)
	defer f.Close()
	m, err = ReadMetadata(f)
	c.Assert(err, check.IsNil)
	c.Check(m.Rows, check.DeepEquals, its9munRows)
}

func (s *S) TestReadMetadataInvalid(c *check.C) {
	header := "id\t" + strings.Join(Columns, "\t") + "\n"
	for i, t := range []struct {
		in   string
		line int
		want string
	}{
		{in: "", line: 1, want: "failed to locate header"},
		{in: "\n\n", line: 1, want: "failed to locate header"},
		{
			in:   strings.Replace(header, "\tmatches_rev_frac", "", 1),
			line: 1, want: `"matches_rev_frac" is not a column`,
		},
		{
			in:   strings.Replace(strings.Replace(header, "\ttarget", "", 1), "\tlength", "", 1),
			line: 1, want: `"length" is not a column`,
		},
		{
			in:   header + "p1\te\tt\tforward\t1/1\t1/1\tlong\t1\t2\t3\t1\t1\n",
			line: 2, want: "invalid length: .*",
		},
		{
			in:   header + "p1\te\tt\tsideways\t1/1\t1/1\t4\t1\t2\t3\t1\t1\n",
			line: 2, want: `invalid match_orientation "sideways"`,
		},
		{
			in:   header + "p1\te\tt\tforward\t1/1\t1/1\t4\t1\t2\t3\t1\n",
			line: 2, want: "expected 12 fields, found 11",
		},
	} {
		_, err := ReadMetadata(strings.NewReader(t.in))
		var ve *ValidationError
		c.Assert(errors.As(err, &ve), check.Equals, true, check.Commentf("Test %d: %v", i, err))
		c.Check(ve.Line, check.Equals, t.line, check.Commentf("Test %d", i))
		c.Check(ve.Reason, check.Matches, t.want, check.Commentf("Test %d", i))
	}
}
